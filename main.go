package main

import (
	"github.com/remixqq/myqq-go/cmd/qqctl"
)

func main() {
	qqctl.Main()
}
