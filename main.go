package main

import "github.com/calderonh/spamsense/cmd"

func main() {
	cmd.Execute()
}
