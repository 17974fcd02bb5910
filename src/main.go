// @title        Mergington High School API
// @version      1.0
// @description  API for viewing and signing up for extracurricular activities
// @BasePath     /
package main

import "mergington-activities/src/cli"

func main() {
	cli.Execute()
}
