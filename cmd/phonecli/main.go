// phonecli is a command-line harness around the phonelib packages: validate,
// normalise, classify, format and extract phone numbers from the shell.
package main

func main() {
	Execute()
}
