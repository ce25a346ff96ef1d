// Command pathlen estimates the length of an NPC's path and the time it takes
// to travel it.
package main

func main() {
	Execute()
}
