package campgrounds_test

import "fmt"

// fmtData flattens a view model for substring assertions.
func fmtData(v any) string { return fmt.Sprintf("%+v", v) }
