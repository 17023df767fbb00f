package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/poiesic/guidesearch/catalog"
	"github.com/poiesic/guidesearch/store/badger"
)

var records = []catalog.ContentRecord{
	{
		Slug:        "parking-in-saltaire",
		Title:       "Parking in Saltaire",
		Description: "Where to park near Salts Mill and the village, including free street parking and the Caroline Street car park.",
		Category:    "Practical",
		Keywords:    []string{"parking", "car", "travel"},
		Image:       "/images/parking.jpg",
		Icon:        "car",
	},
	{
		Slug:        "walks-from-saltaire",
		Title:       "Walks from Saltaire",
		Description: "Riverside and canal walks starting from the village, from short strolls to the full Shipley Glen circuit.",
		Category:    "Outdoors",
		Keywords:    []string{"walking", "canal", "river", "trails"},
		Image:       "/images/walks.jpg",
		Icon:        "boot",
	},
	{
		Slug:        "salts-mill",
		Title:       "Salts Mill",
		Description: "The restored Victorian mill at the heart of the village, home to the 1853 Gallery, bookshops, and diners.",
		Category:    "Attractions",
		Keywords:    []string{"gallery", "hockney", "history", "shopping"},
		Image:       "/images/salts-mill.jpg",
		Icon:        "building",
	},
	{
		Slug:        "roberts-park",
		Title:       "Roberts Park",
		Description: "Riverside Victorian park with a bandstand, cricket pitch, playground, and the Half Moon cafe.",
		Category:    "Outdoors",
		Keywords:    []string{"park", "playground", "cricket", "picnic"},
		Image:       "/images/roberts-park.jpg",
		Icon:        "tree",
	},
	{
		Slug:        "saltaire-united-reformed-church",
		Title:       "Saltaire United Reformed Church",
		Description: "Grade I listed Italianate church built by Titus Salt in 1859, open to visitors most weekends.",
		Category:    "Attractions",
		Keywords:    []string{"church", "history", "architecture"},
		Image:       "/images/church.jpg",
		Icon:        "landmark",
	},
	{
		Slug:        "eating-out",
		Title:       "Eating Out in Saltaire",
		Description: "Cafes, pubs, and restaurants in and around the village, from the Salts Diner to Victoria Road coffee shops.",
		Category:    "Food & Drink",
		Keywords:    []string{"restaurants", "cafes", "pubs", "coffee"},
		Image:       "/images/eating.jpg",
		Icon:        "utensils",
	},
	{
		Slug:        "getting-here-by-train",
		Title:       "Getting Here by Train",
		Description: "Saltaire station is on the Airedale line with direct trains from Leeds and Bradford every few minutes.",
		Category:    "Practical",
		Keywords:    []string{"train", "station", "travel", "leeds", "bradford"},
		Image:       "/images/train.jpg",
		Icon:        "train",
	},
	{
		Slug:        "shipley-glen-tramway",
		Title:       "Shipley Glen Tramway",
		Description: "Victorian cable tramway climbing through woodland to Shipley Glen, running summer weekends.",
		Category:    "Attractions",
		Keywords:    []string{"tramway", "victorian", "glen", "family"},
		Image:       "/images/tramway.jpg",
		Icon:        "tram",
	},
	{
		Slug:        "leeds-liverpool-canal",
		Title:       "Leeds and Liverpool Canal",
		Description: "Towpath walks, boat trips from the wharf, and the locks at Hirst Wood and Dowley Gap.",
		Category:    "Outdoors",
		Keywords:    []string{"canal", "boats", "towpath", "cycling"},
		Image:       "/images/canal.jpg",
		Icon:        "anchor",
	},
	{
		Slug:        "saltaire-festival",
		Title:       "Saltaire Festival",
		Description: "The village's September festival with live music, street food, makers' markets, and open gardens.",
		Category:    "Events",
		Keywords:    []string{"festival", "music", "market", "september"},
		Image:       "/images/festival.jpg",
		Icon:        "calendar",
	},
	{
		Slug:        "world-heritage-site",
		Title:       "A World Heritage Village",
		Description: "Why UNESCO listed Saltaire in 2001, and how the model village was built for Salts Mill workers.",
		Category:    "History",
		Keywords:    []string{"unesco", "heritage", "titus salt", "history"},
		Image:       "/images/heritage.jpg",
		Icon:        "scroll",
	},
	{
		Slug:        "victoria-road-shops",
		Title:       "Victoria Road Shops",
		Description: "Independent shops along Victoria Road, including bookshops, galleries, and vintage stores.",
		Category:    "Food & Drink",
		Keywords:    []string{"shopping", "independent", "gifts"},
		Image:       "/images/shops.jpg",
		Icon:        "bag",
	},
}

var (
	dbPath   = flag.String("db", "./guide_db", "catalog database directory to seed")
	jsonPath = flag.String("json", "", "also write the catalog as JSON to this path")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func main() {
	backend, err := badger.OpenBackend(*dbPath, false)
	if err != nil {
		panic(err)
	}
	defer backend.Close()

	repo, err := badger.NewCatalogRepository(backend)
	if err != nil {
		panic(err)
	}
	defer repo.Close()

	if err := repo.PutCatalog(context.Background(), records); err != nil {
		panic(err)
	}
	slog.Info("seeded catalog", "records", len(records), "db", *dbPath)

	if *jsonPath != "" {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			panic(err)
		}
		if err := os.WriteFile(*jsonPath, data, 0o644); err != nil {
			panic(err)
		}
		slog.Info("wrote catalog JSON", "path", *jsonPath)
	}
}
