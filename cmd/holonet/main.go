// Command holonet serves the people, planets and favorites API.
package main

import "github.com/mesh-intelligence/holonet/internal/cli"

func main() {
	cli.Execute()
}
