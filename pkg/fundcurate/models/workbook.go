package models

// Workbook is the curated output: tables keyed by tab name.
type Workbook struct {
	// BookName is the source workbook file name (no path).
	BookName string `json:"book_name"`
	// Tables maps tab name to its table.
	Tables map[string]*Table `json:"tables"`
}

// NewWorkbook creates an empty workbook for the named source file.
func NewWorkbook(bookName string) *Workbook {
	return &Workbook{
		BookName: bookName,
		Tables:   make(map[string]*Table),
	}
}

// Put stores a table under its name and reports whether it replaced one.
func (w *Workbook) Put(t *Table) bool {
	_, replaced := w.Tables[t.Name]
	w.Tables[t.Name] = t
	return replaced
}

// Table returns the table stored under name.
func (w *Workbook) Table(name string) (*Table, bool) {
	t, ok := w.Tables[name]
	return t, ok
}

// HasTable reports whether a table is stored under name.
func (w *Workbook) HasTable(name string) bool {
	_, ok := w.Tables[name]
	return ok
}

// Names returns the stored tab names in output sheet order.
func (w *Workbook) Names() []string {
	var names []string
	for _, name := range SheetOrder {
		if _, ok := w.Tables[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Empty reports whether no tab has been built.
func (w *Workbook) Empty() bool {
	return len(w.Tables) == 0
}
