package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"configstore"
)

func main() {
	path := filepath.Join(os.TempDir(), "configstore-demo", "app.json")
	defer os.RemoveAll(filepath.Dir(path))

	cfg, err := configstore.Quick(path, map[string]any{
		"server": map[string]any{
			"host":    "localhost",
			"port":    8080,
			"enabled": true,
		},
		"debug": false,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, _ := cfg.String("host", "", "server")
	port, _ := cfg.Int64("port", 0, "server")
	fmt.Printf("server: %s:%d\n", host, port)

	// Mutations persist immediately while auto-save is on.
	if err := cfg.Set("server.host", "example.com"); err != nil {
		log.Fatal(err)
	}

	// Typed decoding of a section into a struct.
	var server struct {
		Host    string `json:"host"`
		Port    int    `json:"port"`
		Enabled bool   `json:"enabled"`
	}
	if err := cfg.Scan("server", &server); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("decoded: %+v\n", server)

	// Later calls anywhere in the process observe the same store.
	again, _ := configstore.Shared("")
	fmt.Println("same instance:", again == cfg)
}
