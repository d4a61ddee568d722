package model

// Movie represents a single entry of the movie/show catalogue.  Records are
// owned by the backing store and are only ever read by this service, so the
// struct carries both bson tags (MongoDB collection) and json tags (HTTP
// responses).  Column names in the MySQL movies table match the json tags.
//
// Fields:
//  ShowID      – unique identifier of the entry.
//  Type        – category label such as "Movie" or "TV Show".
//  ReleaseYear – year of the original release.
//  Rating      – content rating label (e.g. "PG-13", "TV-MA").
//
// The remaining fields are descriptive and pass through unexamined.
type Movie struct {
    ShowID      int64  `json:"show_id" bson:"show_id"`           // movies.show_id
    Type        string `json:"type" bson:"type"`                 // movies.type
    Title       string `json:"title" bson:"title"`               // movies.title
    Director    string `json:"director" bson:"director"`         // movies.director
    Cast        string `json:"cast" bson:"cast"`                 // movies.cast
    Country     string `json:"country" bson:"country"`           // movies.country
    DateAdded   string `json:"date_added" bson:"date_added"`     // movies.date_added
    ReleaseYear int    `json:"release_year" bson:"release_year"` // movies.release_year
    Rating      string `json:"rating" bson:"rating"`             // movies.rating
    Duration    string `json:"duration" bson:"duration"`         // movies.duration
    ListedIn    string `json:"listed_in" bson:"listed_in"`       // movies.listed_in
    Description string `json:"description" bson:"description"`   // movies.description
}
