package database

// Column describes one column of the declared data model. Default holds a
// ready-to-emit DDL literal; it stays empty for columns whose values come
// from an application-side generator (uuid ids) since those cannot be
// expressed as a constant default.
type Column struct {
	Name     string
	Type     string
	Nullable bool
	Unique   bool
	Default  string
}

type ForeignKey struct {
	Columns    []string
	RefTable   string
	RefColumns []string
	OnDelete   string
}

type Table struct {
	Name        string
	Columns     []Column
	PrimaryKey  []string
	ForeignKeys []ForeignKey
	// Indexes lists single-column lookup indexes. Unique columns get their
	// index from the constraint itself and are not repeated here.
	Indexes []string
}

// Schema declares every table the application owns, in dependency order so
// that CREATE TABLE statements can run top to bottom.
func Schema() []Table {
	return []Table{
		{
			Name: "users",
			Columns: []Column{
				{Name: "id", Type: "char(36)"},
				{Name: "username", Type: "varchar(100)", Unique: true},
				{Name: "email", Type: "varchar(255)", Unique: true},
				{Name: "name", Type: "varchar(255)", Nullable: true},
				{Name: "hashed_password", Type: "varchar(255)"},
				{Name: "role", Type: "varchar(50)", Default: "'user'"},
				{Name: "created_at", Type: "timestamptz", Default: "now()"},
				{Name: "updated_at", Type: "timestamptz", Nullable: true},
			},
			PrimaryKey: []string{"id"},
		},
		{
			Name: "artists",
			Columns: []Column{
				{Name: "id", Type: "char(36)"},
				{Name: "name", Type: "varchar(255)"},
				{Name: "role", Type: "varchar(100)", Nullable: true},
				{Name: "role_translations", Type: "jsonb", Nullable: true},
				{Name: "description", Type: "text", Nullable: true},
				{Name: "description_translations", Type: "jsonb", Nullable: true},
				{Name: "image_url", Type: "text", Nullable: true},
				{Name: "events_count", Type: "integer", Default: "0"},
				{Name: "badge", Type: "varchar(20)", Nullable: true},
				{Name: "instagram", Type: "varchar(255)", Nullable: true},
				{Name: "show_on_website", Type: "boolean", Default: "TRUE"},
				{Name: "created_at", Type: "timestamptz", Default: "now()"},
				{Name: "updated_at", Type: "timestamptz", Nullable: true},
			},
			PrimaryKey: []string{"id"},
			Indexes:    []string{"name"},
		},
		{
			Name: "packs",
			Columns: []Column{
				{Name: "id", Type: "char(36)"},
				{Name: "name", Type: "varchar(100)"},
				{Name: "name_translations", Type: "jsonb", Nullable: true},
				{Name: "type", Type: "varchar(50)"},
				{Name: "description", Type: "text", Nullable: true},
				{Name: "description_translations", Type: "jsonb", Nullable: true},
				{Name: "price", Type: "numeric(10,2)"},
				{Name: "currency", Type: "varchar(10)", Default: "'€'"},
				{Name: "unit", Type: "varchar(50)", Nullable: true},
				{Name: "features", Type: "jsonb", Nullable: true},
				{Name: "features_translations", Type: "jsonb", Nullable: true},
				{Name: "is_active", Type: "boolean", Default: "TRUE"},
				{Name: "created_at", Type: "timestamptz", Default: "now()"},
				{Name: "updated_at", Type: "timestamptz", Nullable: true},
			},
			PrimaryKey: []string{"id"},
		},
		{
			Name: "events",
			Columns: []Column{
				{Name: "id", Type: "char(36)"},
				{Name: "title", Type: "varchar(255)"},
				{Name: "title_translations", Type: "jsonb", Nullable: true},
				{Name: "description", Type: "text"},
				{Name: "description_translations", Type: "jsonb", Nullable: true},
				{Name: "category", Type: "varchar(50)"},
				{Name: "date", Type: "varchar(20)"},
				{Name: "time", Type: "varchar(10)"},
				{Name: "location", Type: "varchar(255)"},
				{Name: "address", Type: "varchar(500)", Nullable: true},
				{Name: "city", Type: "varchar(100)"},
				{Name: "maps_embed_url", Type: "text", Nullable: true},
				{Name: "image_url", Type: "text", Nullable: true},
				{Name: "capacity", Type: "integer", Nullable: true},
				{Name: "featured", Type: "boolean", Default: "FALSE"},
				{Name: "status", Type: "varchar(20)", Default: "'upcoming'"},
				{Name: "created_at", Type: "timestamptz", Default: "now()"},
				{Name: "updated_at", Type: "timestamptz", Nullable: true},
			},
			PrimaryKey: []string{"id"},
			Indexes:    []string{"title"},
		},
		{
			Name: "event_artists",
			Columns: []Column{
				{Name: "event_id", Type: "char(36)"},
				{Name: "artist_id", Type: "char(36)"},
				{Name: "start_time", Type: "varchar(10)", Nullable: true},
				{Name: "end_time", Type: "varchar(10)", Nullable: true},
				{Name: "order", Type: "integer", Default: "0"},
			},
			PrimaryKey: []string{"event_id", "artist_id"},
			ForeignKeys: []ForeignKey{
				{Columns: []string{"event_id"}, RefTable: "events", RefColumns: []string{"id"}, OnDelete: "CASCADE"},
				{Columns: []string{"artist_id"}, RefTable: "artists", RefColumns: []string{"id"}, OnDelete: "CASCADE"},
			},
		},
		{
			Name: "event_packs",
			Columns: []Column{
				{Name: "event_id", Type: "char(36)"},
				{Name: "pack_id", Type: "char(36)"},
				{Name: "is_soldout", Type: "boolean", Default: "FALSE"},
			},
			PrimaryKey: []string{"event_id", "pack_id"},
			ForeignKeys: []ForeignKey{
				{Columns: []string{"event_id"}, RefTable: "events", RefColumns: []string{"id"}, OnDelete: "CASCADE"},
				{Columns: []string{"pack_id"}, RefTable: "packs", RefColumns: []string{"id"}, OnDelete: "CASCADE"},
			},
		},
	}
}
