package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
