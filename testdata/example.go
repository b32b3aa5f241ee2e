package main

import (
	"fmt"
	"strings"
)

// Shout upper-cases s and adds an exclamation mark.
func Shout(s string) string {
	return strings.ToUpper(s) + "!"
}

func main() {
	fmt.Println(Shout("héllo, 世界"))
}
