package viewmodel

// Dashboard carries everything the dashboard template needs: the selector
// options, the current selection and a little dataset provenance.
type Dashboard struct {
	Title           string
	Boroughs        []string
	Species         []string
	SelectedBorough string
	SelectedSpecies string
	SnapshotID      string
	RowCount        int
	IsDev           bool
}
