package lookup

// The seven lookup tables share one shape: a surrogate id plus a unique
// name. Each gets its own GORM model so migrations create distinct
// tables; the repository works over the table name.

type Hall struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`
}

type Programme struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`
}

type Level struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`
}

type Congregation struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`
}

type Committee struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`
}

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`
}

type Semester struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`
}

// Lookup table names as registered in routes.
const (
	TableHalls         = "halls"
	TableProgrammes    = "programmes"
	TableLevels        = "levels"
	TableCongregations = "congregations"
	TableCommittees    = "committees"
	TableCategories    = "categories"
	TableSemesters     = "semesters"
)

// Models returns every lookup model for AutoMigrate.
func Models() []interface{} {
	return []interface{}{
		&Hall{}, &Programme{}, &Level{}, &Congregation{},
		&Committee{}, &Category{}, &Semester{},
	}
}
