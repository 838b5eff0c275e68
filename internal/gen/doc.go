// Package gen generates aotjson converters for the struct types of a Go
// package.
//
// The generator works in three steps:
//   - LoadPackage type-checks the target package with golang.org/x/tools/go/packages
//   - Analyze turns the requested types, and every struct of the same package they reach, into a Plan
//   - Render executes the file template and formats the result with go/format
package gen
