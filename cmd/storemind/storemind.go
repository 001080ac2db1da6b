package main

import (
	"math/rand"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/retailmesh/storemind/internal/storemind"
)

func main() {
	rand.New(rand.NewSource(time.Now().UTC().UnixNano()))

	storemind.NewApp("storemind").Run()
}
