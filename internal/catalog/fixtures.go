package catalog

import (
	"time"

	"github.com/clement8426/trail-mosaic-sub000/internal/shared/geo"
)

// Embedded fixture dataset. This is the whole "database" when no
// Postgres source is configured.

var fixtureTrails = []Trail{
	{
		ID:          "trail-1",
		Name:        "La Poursuite",
		Location:    "Montpellier",
		Coordinates: geo.Coordinate{3.8767, 43.6108},
		Description: "Descente technique dans les garrigues, enchaînement de virages relevés et de pierriers.",
		ImageURL:    "https://images.trailmosaic.example/la-poursuite.jpg",
		DistanceKm:  4.2,
		ElevationM:  380,
		Difficulty:  DifficultyAdvanced,
		TrailType:   TrailTypeDownhill,
		BikeTypes:   []string{"Enduro", "DH"},
		Obstacles: []Obstacle{
			{Type: "drop", Description: "Drop de 1m50 après le premier virage"},
			{Type: "gap", Description: "Gap optionnel sur la section médiane"},
		},
		Rating:  4.5,
		Reviews: 12,
		Region:  "Occitanie",
	},
	{
		ID:          "trail-2",
		Name:        "Bois de Serres",
		Location:    "Lyon",
		Coordinates: geo.Coordinate{4.8357, 45.7640},
		Description: "Terrain de bosses ombragé, parfait pour travailler les réceptions.",
		ImageURL:    "https://images.trailmosaic.example/bois-de-serres.jpg",
		DistanceKm:  1.1,
		ElevationM:  60,
		Difficulty:  DifficultyIntermediate,
		TrailType:   TrailTypeTerrain,
		BikeTypes:   []string{"BMX", "Dirt"},
		Obstacles: []Obstacle{
			{Type: "table", Description: "Ligne de trois tables progressives"},
		},
		Rating:  4.0,
		Reviews: 10,
		Region:  "Auvergne-Rhône-Alpes",
	},
	{
		ID:          "trail-3",
		Name:        "Crête des Calanques",
		Location:    "Marseille",
		Coordinates: geo.Coordinate{5.3698, 43.2965},
		Description: "Single exposé au-dessus de la mer, caillasse et marches naturelles.",
		ImageURL:    "https://images.trailmosaic.example/crete-calanques.jpg",
		DistanceKm:  6.8,
		ElevationM:  420,
		Difficulty:  DifficultyExpert,
		TrailType:   TrailTypeDownhill,
		BikeTypes:   []string{"Enduro"},
		Obstacles: []Obstacle{
			{Type: "rock-garden", Description: "Pierrier long de 200m"},
		},
		Rating:  4.8,
		Reviews: 25,
		Region:  "Provence-Alpes-Côte d'Azur",
	},
	{
		ID:          "trail-4",
		Name:        "Pumptrack des Berges",
		Location:    "Bordeaux",
		Coordinates: geo.Coordinate{-0.5792, 44.8378},
		Description: "Bosses à tricks en bord de Garonne, accessible à tous les niveaux.",
		ImageURL:    "https://images.trailmosaic.example/pumptrack-berges.jpg",
		DistanceKm:  0.6,
		ElevationM:  15,
		Difficulty:  DifficultyBeginner,
		TrailType:   TrailTypeBumpTricks,
		BikeTypes:   []string{"BMX", "Dirt", "VTT"},
		Obstacles: []Obstacle{
			{Type: "spine", Description: "Spine central avec réception des deux côtés"},
		},
		Rating:  3.9,
		Reviews: 18,
		Region:  "Nouvelle-Aquitaine",
	},
	{
		ID:          "trail-5",
		Name:        "Balcon du Vercors",
		Location:    "Grenoble",
		Coordinates: geo.Coordinate{5.7245, 45.1885},
		Description: "Descente alpine longue, alternance de forêt et de plateaux.",
		ImageURL:    "https://images.trailmosaic.example/balcon-vercors.jpg",
		DistanceKm:  11.3,
		ElevationM:  950,
		Difficulty:  DifficultyAdvanced,
		TrailType:   TrailTypeDownhill,
		BikeTypes:   []string{"Enduro", "DH"},
		Obstacles: []Obstacle{
			{Type: "drop", Description: "Série de marches rocheuses au tiers supérieur"},
			{Type: "north-shore", Description: "Passerelle bois sur la traversée du ruisseau"},
		},
		Rating:  4.6,
		Reviews: 31,
		Region:  "Auvergne-Rhône-Alpes",
	},
	{
		ID:          "trail-6",
		Name:        "Dunes de l'Erdre",
		Location:    "Nantes",
		Coordinates: geo.Coordinate{-1.5534, 47.2184},
		Description: "Terrain de bosses roulant en sous-bois, lignes débutant et confirmé.",
		ImageURL:    "https://images.trailmosaic.example/dunes-erdre.jpg",
		DistanceKm:  0.9,
		ElevationM:  25,
		Difficulty:  DifficultyBeginner,
		TrailType:   TrailTypeTerrain,
		BikeTypes:   []string{"VTT", "Dirt"},
		Obstacles:   []Obstacle{},
		Rating:      3.5,
		Reviews:     7,
		Region:      "Pays de la Loire",
	},
}

var fixtureEvents = []Event{
	{
		ID:          "event-1",
		Title:       "Coupe Occitane de Descente",
		Description: "Manche régionale chronométrée, ouvert aux licenciés et non-licenciés.",
		Date:        "2025-06-14",
		Location:    "Montpellier",
		ImageURL:    "https://images.trailmosaic.example/coupe-occitane.jpg",
		Category:    EventCompetition,
		TrailID:     "trail-1",
		Region:      "Occitanie",
	},
	{
		ID:          "event-2",
		Title:       "Jam des Berges",
		Description: "Session freestyle conviviale, BBQ et best trick en fin de journée.",
		Date:        "2025-07-05",
		Location:    "Bordeaux",
		ImageURL:    "https://images.trailmosaic.example/jam-berges.jpg",
		Category:    EventGathering,
		TrailID:     "trail-4",
		Region:      "Nouvelle-Aquitaine",
	},
	{
		ID:          "event-3",
		Title:       "Stage pilotage enduro",
		Description: "Deux jours d'entraînement encadré: freinage, trajectoires, sauts.",
		Date:        "2025-08-22",
		Location:    "Grenoble",
		ImageURL:    "https://images.trailmosaic.example/stage-pilotage.jpg",
		Category:    EventTraining,
		TrailID:     "trail-5",
		Region:      "Auvergne-Rhône-Alpes",
	},
	{
		ID:          "event-4",
		Title:       "Rassemblement VTT de rentrée",
		Description: "Rencontre des clubs de la métropole, parcours découverte.",
		Date:        "2025-09-07",
		Location:    "Lille",
		ImageURL:    "https://images.trailmosaic.example/rassemblement-lille.jpg",
		Category:    EventGathering,
		Region:      "Hauts-de-France",
	},
}

var fixtureSessions = []RideSession{
	{
		ID:          "session-1",
		Title:       "Ride matinal à La Poursuite",
		Description: "Départ 8h du parking haut, navette organisée.",
		Date:        "2025-06-01",
		Time:        "08:00",
		CreatedBy:   "user-1",
		Participants: []Participant{
			{UserID: "user-1", Username: "remi_dh", Status: StatusGoing},
			{UserID: "user-2", Username: "lea.vtt", Status: StatusInterested},
		},
		TrailID: "trail-1",
	},
	{
		ID:          "session-2",
		Title:       "Session bosses après le boulot",
		Description: "Travail des whips, éclairage jusqu'à 22h.",
		Date:        "2025-06-03",
		Time:        "18:30",
		CreatedBy:   "user-2",
		Participants: []Participant{
			{UserID: "user-2", Username: "lea.vtt", Status: StatusGoing},
		},
		TrailID: "trail-2",
	},
	{
		ID:          "session-3",
		Title:       "Reco Balcon du Vercors",
		Description: "Reconnaissance avant le stage, rythme tranquille.",
		Date:        "2025-08-20",
		Time:        "09:30",
		CreatedBy:   "user-3",
		Participants: []Participant{
			{UserID: "user-3", Username: "marco_enduro", Status: StatusGoing},
			{UserID: "user-1", Username: "remi_dh", Status: StatusMaybe},
		},
		TrailID: "trail-5",
	},
}

var fixtureUsers = []User{
	{
		ID:        "user-1",
		Username:  "remi_dh",
		Email:     "remi@trailmosaic.example",
		Bio:       "DH avant tout, pilote du dimanche le reste du temps.",
		Level:     DifficultyAdvanced,
		BikeTypes: []string{"DH", "Enduro"},
		Favorites: []string{"trail-1", "trail-3"},
		Location:  "Montpellier",
		CreatedAt: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:        "user-2",
		Username:  "lea.vtt",
		Email:     "lea@trailmosaic.example",
		Bio:       "Bosses et pumptrack, toujours partante pour une session.",
		Level:     DifficultyIntermediate,
		BikeTypes: []string{"BMX", "Dirt"},
		Favorites: []string{"trail-2", "trail-4"},
		Location:  "Lyon",
		CreatedAt: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:        "user-3",
		Username:  "marco_enduro",
		Email:     "marco@trailmosaic.example",
		Bio:       "Grandes journées en montagne, le dénivelé ne fait pas peur.",
		Level:     DifficultyExpert,
		BikeTypes: []string{"Enduro"},
		Favorites: []string{"trail-5"},
		Location:  "Grenoble",
		CreatedAt: time.Date(2023, 11, 18, 0, 0, 0, 0, time.UTC),
	},
}

var fixtureRegions = []RegionSummary{
	{Name: "Occitanie", Coordinates: geo.Coordinate{2.1, 43.7}, Spots: 1, Events: 1, Sessions: 1},
	{Name: "Auvergne-Rhône-Alpes", Coordinates: geo.Coordinate{4.9, 45.3}, Spots: 2, Events: 1, Sessions: 2},
	{Name: "Provence-Alpes-Côte d'Azur", Coordinates: geo.Coordinate{6.0, 43.9}, Spots: 1, Events: 0, Sessions: 0},
	{Name: "Nouvelle-Aquitaine", Coordinates: geo.Coordinate{-0.3, 44.9}, Spots: 1, Events: 1, Sessions: 0},
	{Name: "Pays de la Loire", Coordinates: geo.Coordinate{-0.8, 47.5}, Spots: 1, Events: 0, Sessions: 0},
	{Name: "Hauts-de-France", Coordinates: geo.Coordinate{2.8, 50.3}, Spots: 0, Events: 1, Sessions: 0},
}
