// Command ricos converts HTML into rich-content document JSON.
package main

import "github.com/ditra-consulting/html-to-ricos-converter/cmd"

func main() {
	cmd.Execute()
}
