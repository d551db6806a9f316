package graphcsv_test

import (
	"fmt"

	"github.com/matzehuels/licensegraph/pkg/graphcsv"
)

func ExampleQuote() {
	fmt.Println(graphcsv.Quote(`">= 1.2" || ~2.0`))
	// Output: "'>= 1.2' || ~2.0"
}

func ExampleImportArgs() {
	for _, arg := range graphcsv.ImportArgs("out", "neo4j", []graphcsv.Table{graphcsv.Versions}) {
		fmt.Println(arg)
	}
	// Output:
	// database
	// import
	// full
	// --nodes=Version=out/versions_header.csv,out/versions.csv
	// --overwrite-destination
	// neo4j
}
