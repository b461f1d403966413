// Command docfold builds a documentation tree from Go package comments.
package main

import "github.com/mouse-blink/docfold/cmd"

func main() {
	cmd.Execute()
}
