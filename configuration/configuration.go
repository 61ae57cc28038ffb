package configuration

type Configuration struct {
	Packages string `usage:"packages file, stanzas to be annotated"`
	Sources  string `usage:"sources file, stanzas listing the packages they build"`
	Extra    string `usage:"additional sources file, optional"`
	Output   string `usage:"output file, empty means stdout"`

	PrimaryKey   string `usage:"field identifying a package stanza"`
	SecondaryKey string `usage:"field identifying a source stanza"`
	ListField    string `usage:"source field with the comma separated list of packages"`
	AnchorField  string `usage:"package field after which the link is inserted"`
	LinkField    string `usage:"name of the inserted field"`

	ExtraMerge      string `usage:"how extra sources combine with sources: after | before | override"`
	DuplicateFields string `usage:"repeated field inside a stanza: last-wins | reject"`
	MissingKey      string `usage:"stanza without its key field: error | skip"`

	Format string `usage:"output format: stanza | json"`
	Sort   string `usage:"sort output by primary key: none | asc | desc"`
	Filter string `usage:"only output packages matching this JSON query"`

	Version    bool `usage:"show version and exit"`
	ShowConfig bool `usage:"print config"`
}
