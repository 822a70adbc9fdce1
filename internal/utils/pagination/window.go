package pagination

// Window computes the cursor-emulation parameters for page-number access
// over an ordered scan. The page is clamped to >= 1; skip is how many
// documents the throwaway query must read to locate the cursor, i.e. the
// last document of the preceding page. Cost grows linearly with the page
// number, which is the accepted price of arbitrary page jumps.
func Window(limit, page int) (clampedPage, skip int) {
	if page < 1 {
		page = 1
	}
	return page, (page - 1) * limit
}
