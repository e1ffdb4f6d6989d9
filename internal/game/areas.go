package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultAreasPath is the on-disk location of bundled areas.
const DefaultAreasPath = "data/areas"

type areaFile struct {
	Name  string         `json:"name"`
	Mobs  []*MobTemplate `json:"mobs"`
	Rooms []areaRoom     `json:"rooms"`
}

type areaRoom struct {
	ID          RoomID            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Exits       map[string]RoomID `json:"exits"`
	Spawns      []areaSpawn       `json:"spawns"`
}

type areaSpawn struct {
	Mob     string `json:"mob"`
	Desired int    `json:"desired"`
}

// LoadAreas reads every *.json area file under dir and assembles the room
// graph. Files load in name order so room definitions are deterministic.
func LoadAreas(dir string) (map[RoomID]*Room, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read areas dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	rooms := make(map[RoomID]*Room)
	for _, name := range names {
		if err := loadAreaFile(filepath.Join(dir, name), rooms); err != nil {
			return nil, fmt.Errorf("area %s: %w", name, err)
		}
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("no rooms defined under %s", dir)
	}

	// Exits must resolve inside the loaded graph; a dangling exit would
	// strand entities at runtime.
	for _, r := range rooms {
		for exit, target := range r.Exits {
			if _, ok := rooms[target]; !ok {
				return nil, fmt.Errorf("room %d: exit %s leads to %w %d", r.ID, exit, ErrUnknownRoom, target)
			}
		}
	}
	return rooms, nil
}

func loadAreaFile(path string, rooms map[RoomID]*Room) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var area areaFile
	if err := json.Unmarshal(data, &area); err != nil {
		return err
	}

	templates := make(map[string]*MobTemplate, len(area.Mobs))
	for _, t := range area.Mobs {
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("mob template with empty name")
		}
		normalizeTemplate(t)
		templates[t.Name] = t
	}

	for _, def := range area.Rooms {
		if def.ID == RoomNone {
			return fmt.Errorf("room id %d is reserved", RoomNone)
		}
		if _, exists := rooms[def.ID]; exists {
			return fmt.Errorf("duplicate room id %d", def.ID)
		}

		exits := make(map[Direction]RoomID, len(def.Exits))
		for token, target := range def.Exits {
			dir, ok := ParseDirection(token)
			if !ok {
				return fmt.Errorf("room %d: bad exit direction %q", def.ID, token)
			}
			exits[dir] = target
		}

		room := NewRoom(def.ID, def.Title, def.Description, exits)
		for _, spawn := range def.Spawns {
			t, ok := templates[spawn.Mob]
			if !ok {
				return fmt.Errorf("room %d: unknown mob template %q", def.ID, spawn.Mob)
			}
			room.AddSpawnRule(t, spawn.Desired)
		}
		rooms[def.ID] = room
	}
	return nil
}
