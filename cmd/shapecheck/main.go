// Command shapecheck validates JSON and YAML documents against shape files.
//
//	shapecheck check --shape user.yaml payload.json
//	shapecheck check --shape user.yaml --all users.json
//	shapecheck lint shapes/*.yaml
//	shapecheck serve --shape user.yaml
package main

import "os"

func main() {
	os.Exit(Execute())
}
