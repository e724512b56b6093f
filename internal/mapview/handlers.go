package mapview

import (
	"encoding/json"

	"github.com/clement8426/trail-mosaic-sub000/internal/catalog"
	"github.com/clement8426/trail-mosaic-sub000/internal/search"
	"github.com/clement8426/trail-mosaic-sub000/internal/shared/geo"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// clientMessage is everything a map view can send. Type selects which
// fields are read.
type clientMessage struct {
	Type string `json:"type"` // ready | view_mode | filters | viewport | locate | select | deselect

	Mode string `json:"mode,omitempty"`

	Text       string   `json:"text,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
	TrailType  string   `json:"trail_type,omitempty"`
	BikeType   string   `json:"bike_type,omitempty"`
	Category   string   `json:"category,omitempty"`
	Region     string   `json:"region,omitempty"`
	MinKm      *float64 `json:"min_km,omitempty"`
	MaxKm      *float64 `json:"max_km,omitempty"`

	Lng  *float64 `json:"lng,omitempty"`
	Lat  *float64 `json:"lat,omitempty"`
	Zoom *float64 `json:"zoom,omitempty"`

	Kind string `json:"kind,omitempty"`
	ID   string `json:"id,omitempty"`
}

type serverMessage struct {
	Type      string     `json:"type"` // markers | camera | selection | refresh
	Markers   *Diff      `json:"markers,omitempty"`
	Camera    *Camera    `json:"camera,omitempty"`
	Selection *Selection `json:"selection,omitempty"`
}

// RegisterRoutes wires the websocket map surface. Each connection owns
// one controller; closing the socket tears everything down.
func RegisterRoutes(r fiber.Router, cat *catalog.Catalog, hub *Hub) {
	r.Get("/ws/:viewID", websocket.New(func(c *websocket.Conn) {
		viewID := c.Params("viewID")
		ctrl := NewController(cat)
		ctrl.BeginLoading()

		client := hub.Register(viewID)
		defer hub.Unregister(client)

		// the connection may not be written from two goroutines, so
		// every reply funnels through outbound and a single writer
		outbound := make(chan serverMessage, 16)
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				select {
				case msg, ok := <-outbound:
					if !ok {
						return
					}
					if writeMessage(c, msg) != nil {
						return
					}
				case payload, ok := <-client.Send:
					if !ok {
						return
					}
					msg := serverMessage{Type: "refresh"}
					_ = json.Unmarshal(payload, &msg)
					if writeMessage(c, msg) != nil {
						return
					}
				}
			}
		}()

		for {
			_, raw, err := c.ReadMessage()
			if err != nil {
				break
			}
			var msg clientMessage
			if err := json.Unmarshal(raw, &msg); err != nil {
				continue
			}
			handleClientMessage(outbound, ctrl, msg)
		}
		close(outbound)
		<-done
	}))
}

func handleClientMessage(out chan<- serverMessage, ctrl *Controller, msg clientMessage) {
	switch msg.Type {
	case "ready":
		diff, camera := ctrl.SetReady()
		sendReconciliation(out, diff, camera)
	case "view_mode":
		diff, camera := ctrl.SetViewMode(msg.Mode)
		sendReconciliation(out, diff, camera)
	case "filters":
		diff, camera := ctrl.SetFilters(filtersFromMessage(msg))
		sendReconciliation(out, diff, camera)
	case "viewport":
		if msg.Lng == nil || msg.Lat == nil || msg.Zoom == nil {
			return
		}
		// a pan/zoom echo must not move the camera again
		diff, _ := ctrl.SetViewport(geo.Coordinate{*msg.Lng, *msg.Lat}, *msg.Zoom)
		sendReconciliation(out, diff, nil)
	case "locate":
		if msg.Lng == nil || msg.Lat == nil {
			return
		}
		diff, camera := ctrl.SetUserLocation(geo.Coordinate{*msg.Lng, *msg.Lat})
		sendReconciliation(out, diff, camera)
	case "select":
		selection, camera := ctrl.Select(msg.Kind, msg.ID)
		if selection == nil {
			return
		}
		out <- serverMessage{Type: "selection", Selection: selection, Camera: camera}
	case "deselect":
		ctrl.ClearSelection()
	}
}

func filtersFromMessage(msg clientMessage) Filters {
	f := Filters{
		Text:       msg.Text,
		Difficulty: msg.Difficulty,
		TrailType:  msg.TrailType,
		BikeType:   msg.BikeType,
		Category:   msg.Category,
		Region:     msg.Region,
	}
	if msg.MinKm != nil || msg.MaxKm != nil {
		r := search.Range{Max: 1e9}
		if msg.MinKm != nil {
			r.Min = *msg.MinKm
		}
		if msg.MaxKm != nil {
			r.Max = *msg.MaxKm
		}
		f.Distance = &r
	}
	if msg.Lng != nil && msg.Lat != nil {
		f.From = &geo.Coordinate{*msg.Lng, *msg.Lat}
	}
	return f
}

func sendReconciliation(out chan<- serverMessage, diff Diff, camera *Camera) {
	if !diff.Empty() {
		out <- serverMessage{Type: "markers", Markers: &diff}
	}
	if camera != nil {
		out <- serverMessage{Type: "camera", Camera: camera}
	}
}

func writeMessage(c *websocket.Conn, msg serverMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return c.WriteMessage(websocket.TextMessage, payload)
}
