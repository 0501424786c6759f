package modrinth_test

import (
	"context"
	"fmt"
	"log"

	"github.com/steviee/go-modlist/internal/catalog"
	"github.com/steviee/go-modlist/internal/modrinth"
)

// ExampleClient_SearchMods demonstrates searching for Fabric mods on a game version.
func ExampleClient_SearchMods() {
	client := modrinth.NewClient(nil) // nil uses default config

	ctx := context.Background()
	results, err := client.SearchMods(ctx, "sodium", "1.20.1", "fabric", 0)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Found %d mods\n", results.TotalHits)
	for _, mod := range results.Hits {
		fmt.Printf("- %s (%s)\n", mod.Title, mod.Slug)
	}
}

// ExampleAdapter_ListFiles demonstrates listing normalized files through the catalog adapter.
func ExampleAdapter_ListFiles() {
	adapter := modrinth.NewAdapter(modrinth.NewClient(nil))

	ctx := context.Background()
	mod, err := adapter.Lookup(ctx, "sodium")
	if err != nil {
		log.Fatal(err)
	}
	if mod == nil {
		fmt.Println("not on Modrinth")
		return
	}

	files, err := adapter.ListFiles(ctx, mod.ID, "1.20.1", "fabric")
	if err != nil {
		log.Fatal(err)
	}

	for _, f := range files {
		if f.Channel == catalog.ChannelRelease {
			fmt.Printf("%s -> %s\n", f.Filename, f.URL)
			break
		}
	}
}

// ExamplePrimaryFile demonstrates picking the downloadable file of a version.
func ExamplePrimaryFile() {
	version := &modrinth.Version{
		Files: []modrinth.File{
			{Filename: "sodium-0.5.8-sources.jar"},
			{Filename: "sodium-fabric-0.5.8.jar", Primary: true, URL: "https://cdn.modrinth.com/sodium.jar"},
		},
	}

	file := modrinth.PrimaryFile(version)
	fmt.Println(file.Filename)
	// Output: sodium-fabric-0.5.8.jar
}
