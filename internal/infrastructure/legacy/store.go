package legacy

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/splashcamper/splashcamper-api/internal/domain/stations"
	"github.com/splashcamper/splashcamper-api/internal/domain/washlanes"

	"github.com/tidwall/gjson"
)

//go:embed data/stations.json
var embeddedStations []byte

// Store is a read-only, in-memory index of legacy station records
type Store struct {
	order   []string
	records map[string]*stations.Station
	raw     map[string][]byte
}

// NewStore loads legacy records from filePath, or from the embedded data set when filePath is empty.
func NewStore(filePath string) (*Store, error) {
	data := embeddedStations
	if filePath != "" {
		b, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read legacy stations file %s: %w", filePath, err)
		}
		data = b
	}
	return Parse(data)
}

// Parse indexes a JSON array of legacy records
func Parse(data []byte) (*Store, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("legacy stations: malformed JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, fmt.Errorf("legacy stations: expected a JSON array")
	}

	s := &Store{
		records: make(map[string]*stations.Station),
		raw:     make(map[string][]byte),
	}

	var parseErr error
	doc.ForEach(func(idx, item gjson.Result) bool {
		id := item.Get("id").String()
		if !stations.IsLegacyID(id) {
			parseErr = fmt.Errorf("legacy stations: record %d has invalid id %q", idx.Int(), id)
			return false
		}
		if _, dup := s.records[id]; dup {
			parseErr = fmt.Errorf("legacy stations: duplicate id %q", id)
			return false
		}
		s.order = append(s.order, id)
		s.records[id] = toStation(id, item)
		s.raw[id] = []byte(item.Raw)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return s, nil
}

// List returns every legacy record in file order
func (s *Store) List() []*stations.Station {
	list := make([]*stations.Station, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.copyOf(id))
	}
	return list
}

// Get returns a copy of a legacy record and its raw JSON document
func (s *Store) Get(legacyID string) (*stations.Station, []byte, error) {
	if _, ok := s.records[legacyID]; !ok {
		return nil, nil, fmt.Errorf("legacy id %s: %w", legacyID, stations.ErrNotFound)
	}
	return s.copyOf(legacyID), s.raw[legacyID], nil
}

// Len returns the number of legacy records
func (s *Store) Len() int {
	return len(s.order)
}

func (s *Store) copyOf(id string) *stations.Station {
	st := *s.records[id]
	if st.WashLanes != nil {
		st.WashLanes = append([]stations.WashLane(nil), st.WashLanes...)
	}
	return &st
}

func toStation(id string, item gjson.Result) *stations.Station {
	legacyID := id
	st := &stations.Station{
		ID:          id,
		LegacyID:    &legacyID,
		Name:        item.Get("name").String(),
		Type:        item.Get("type").String(),
		Status:      stations.StatusActive,
		Address:     item.Get("address").String(),
		City:        item.Get("city").String(),
		PostalCode:  item.Get("postalCode").String(),
		Latitude:    item.Get("latitude").Float(),
		Longitude:   item.Get("longitude").Float(),
		Description: item.Get("description").String(),
		Website:     item.Get("website").String(),
		Phone:       item.Get("phone").String(),
	}
	if st.Type == "" {
		st.Type = stations.TypeWash
	}

	if svc := item.Get("services"); svc.IsObject() {
		st.Services = &stations.Service{
			DrinkingWater:      svc.Get("drinkingWater").Bool(),
			GreyWaterDisposal:  svc.Get("greyWaterDisposal").Bool(),
			BlackWaterDisposal: svc.Get("blackWaterDisposal").Bool(),
			Electricity:        svc.Get("electricity").Bool(),
			Toilets:            svc.Get("toilets").Bool(),
			Showers:            svc.Get("showers").Bool(),
			Vacuum:             svc.Get("vacuum").Bool(),
			HighPressure:       svc.Get("highPressure").Bool(),
		}
		for _, m := range svc.Get("paymentMethods").Array() {
			st.Services.PaymentMethods = append(st.Services.PaymentMethods, m.String())
		}
	}

	if p := item.Get("parking"); p.IsObject() {
		pd := &stations.ParkingDetails{
			Capacity:         int(p.Get("capacity").Int()),
			IsFree:           p.Get("isFree").Bool(),
			OvernightAllowed: p.Get("overnightAllowed").Bool(),
			OpeningHours:     p.Get("openingHours").String(),
		}
		if v := p.Get("pricePerNight"); v.Exists() {
			price := v.Float()
			pd.PricePerNight = &price
		}
		if v := p.Get("maxStayHours"); v.Exists() {
			hours := int(v.Int())
			pd.MaxStayHours = &hours
		}
		if v := p.Get("maxVehicleLengthMeters"); v.Exists() {
			length := v.Float()
			pd.MaxVehicleLengthMeters = &length
		}
		st.ParkingDetails = pd
	}

	if lanes, _, ok := washlanes.DecodeLanes([]byte(item.Raw)); ok {
		st.WashLanes = lanes
	}

	return st
}
