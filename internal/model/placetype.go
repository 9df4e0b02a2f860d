package model

// PlaceTypes lists the place types of the index, most specific first.
var PlaceTypes = []string{
	"venue",
	"address",
	"street",
	"postalcode",
	"neighbourhood",
	"borough",
	"locality",
	"localadmin",
	"county",
	"macrocounty",
	"region",
	"macroregion",
	"dependency",
	"country",
	"empire",
	"continent",
	"ocean",
	"marinearea",
}
