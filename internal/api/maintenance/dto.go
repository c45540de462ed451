package maintenance

// ClearResult counts the rows removed from each table.
type ClearResult struct {
	Posts int64
	Blogs int64
}
