package types

// Table names as they appear in the relational schema.
const (
	TableUsers     = "user"
	TablePeople    = "people"
	TablePlanets   = "planet"
	TableFavorites = "favorite"
)

// StandardTableNames lists all tables in dependency order.
var StandardTableNames = []string{
	TableUsers,
	TablePeople,
	TablePlanets,
	TableFavorites,
}
