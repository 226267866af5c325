package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/courtside/internal/courtside/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := courtside(); err != nil {
		logrus.Fatal(err)
	}
}

func courtside() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
