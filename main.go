package main

import (
	"github.com/StavanShah1402/Music-Recommendation-System/cmd"
)

func main() {
	cmd.Execute()
}
