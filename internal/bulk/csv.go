// Package bulk implements the CSV codecs behind the bulk-export and
// bulk-import endpoints. Export writes a fixed header row per resource type;
// import takes pre-split lines and parses them back into models. Round
// tripping reproduces the same records modulo generated ids.
package bulk

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"bluecycle/internal/domain"
	"bluecycle/internal/models"
)

const timeLayout = time.RFC3339

var (
	PickupHeader          = []string{"id", "address", "waste_type", "quantity_kg", "delivery_method", "status", "price", "requested_by_id", "assigned_driver_id", "created_at"}
	UserHeader            = []string{"id", "email", "name", "role", "phone", "bank_name", "bank_account", "created_at"}
	CollectionPointHeader = []string{"id", "name", "address", "city", "latitude", "longitude", "capacity_kg", "active"}
	CatalogHeader         = []string{"id", "name", "category", "unit", "price_per_unit", "active"}
)

type ImportResult struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

func (r *ImportResult) fail(line int, err error) {
	r.Failed++
	r.Errors = append(r.Errors, fmt.Sprintf("line %d: %v", line, err))
}

func WritePickups(w io.Writer, pickups []models.Pickup) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(PickupHeader); err != nil {
		return err
	}
	for _, p := range pickups {
		driver := ""
		if p.AssignedDriverID != nil {
			driver = strconv.FormatUint(uint64(*p.AssignedDriverID), 10)
		}
		rec := []string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.Address,
			p.WasteType,
			strconv.FormatFloat(p.QuantityKg, 'f', -1, 64),
			p.DeliveryMethod,
			p.Status,
			strconv.FormatInt(p.Price, 10),
			strconv.FormatUint(uint64(p.RequestedByID), 10),
			driver,
			p.CreatedAt.Format(timeLayout),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteUsers(w io.Writer, users []models.User) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(UserHeader); err != nil {
		return err
	}
	for _, u := range users {
		rec := []string{
			strconv.FormatUint(uint64(u.ID), 10),
			u.Email,
			u.Name,
			u.Role,
			u.Phone,
			u.BankName,
			u.BankAccount,
			u.CreatedAt.Format(timeLayout),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteCollectionPoints(w io.Writer, points []models.CollectionPoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CollectionPointHeader); err != nil {
		return err
	}
	for _, cp := range points {
		rec := []string{
			strconv.FormatUint(uint64(cp.ID), 10),
			cp.Name,
			cp.Address,
			cp.City,
			strconv.FormatFloat(cp.Latitude, 'f', -1, 64),
			strconv.FormatFloat(cp.Longitude, 'f', -1, 64),
			strconv.FormatFloat(cp.CapacityKg, 'f', -1, 64),
			strconv.FormatBool(cp.Active),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteCatalog(w io.Writer, items []models.WasteCatalogItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CatalogHeader); err != nil {
		return err
	}
	for _, it := range items {
		rec := []string{
			strconv.FormatUint(uint64(it.ID), 10),
			it.Name,
			it.Category,
			it.Unit,
			strconv.FormatInt(it.PricePerUnit, 10),
			strconv.FormatBool(it.Active),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// splitLine parses one CSV line honoring quoting.
func splitLine(line string) ([]string, error) {
	return csv.NewReader(strings.NewReader(line)).Read()
}

// isHeader lets import accept files exported with the header row intact.
func isHeader(fields, header []string) bool {
	if len(fields) != len(header) {
		return false
	}
	for i := range fields {
		if !strings.EqualFold(fields[i], header[i]) {
			return false
		}
	}
	return true
}

// ParsePickups converts pre-split CSV lines into pickups. The id column is
// ignored; the split is derived from the price by the caller.
func ParsePickups(lines []string) ([]models.Pickup, *ImportResult) {
	res := &ImportResult{Errors: []string{}}
	var out []models.Pickup
	for i, line := range lines {
		n := i + 1
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields, err := splitLine(line)
		if err != nil {
			res.fail(n, err)
			continue
		}
		if isHeader(fields, PickupHeader) {
			continue
		}
		if len(fields) < len(PickupHeader) {
			res.fail(n, fmt.Errorf("expected %d columns, got %d", len(PickupHeader), len(fields)))
			continue
		}
		qty, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			res.fail(n, fmt.Errorf("quantity_kg: %v", err))
			continue
		}
		method := strings.ToUpper(fields[4])
		if method != domain.DeliveryPickup && method != domain.DeliveryDropoff {
			res.fail(n, fmt.Errorf("unknown delivery method %q", fields[4]))
			continue
		}
		status := strings.ToUpper(fields[5])
		if !domain.ValidPickupStatus(status) {
			res.fail(n, fmt.Errorf("unknown status %q", fields[5]))
			continue
		}
		price, err := strconv.ParseInt(fields[6], 10, 64)
		if err != nil || price < 0 {
			res.fail(n, fmt.Errorf("price: invalid value %q", fields[6]))
			continue
		}
		requester, err := strconv.ParseUint(fields[7], 10, 64)
		if err != nil {
			res.fail(n, fmt.Errorf("requested_by_id: %v", err))
			continue
		}
		p := models.Pickup{
			Address:        fields[1],
			WasteType:      fields[2],
			QuantityKg:     qty,
			DeliveryMethod: method,
			Status:         status,
			Price:          price,
			RequestedByID:  uint(requester),
		}
		if fields[8] != "" {
			driver, err := strconv.ParseUint(fields[8], 10, 64)
			if err != nil {
				res.fail(n, fmt.Errorf("assigned_driver_id: %v", err))
				continue
			}
			d := uint(driver)
			p.AssignedDriverID = &d
		}
		out = append(out, p)
		res.Success++
	}
	return out, res
}

func ParseCollectionPoints(lines []string) ([]models.CollectionPoint, *ImportResult) {
	res := &ImportResult{Errors: []string{}}
	var out []models.CollectionPoint
	for i, line := range lines {
		n := i + 1
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields, err := splitLine(line)
		if err != nil {
			res.fail(n, err)
			continue
		}
		if isHeader(fields, CollectionPointHeader) {
			continue
		}
		if len(fields) < len(CollectionPointHeader) {
			res.fail(n, fmt.Errorf("expected %d columns, got %d", len(CollectionPointHeader), len(fields)))
			continue
		}
		lat, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			res.fail(n, fmt.Errorf("latitude: %v", err))
			continue
		}
		lng, err := strconv.ParseFloat(fields[5], 64)
		if err != nil {
			res.fail(n, fmt.Errorf("longitude: %v", err))
			continue
		}
		capKg, err := strconv.ParseFloat(fields[6], 64)
		if err != nil {
			res.fail(n, fmt.Errorf("capacity_kg: %v", err))
			continue
		}
		active, err := strconv.ParseBool(fields[7])
		if err != nil {
			res.fail(n, fmt.Errorf("active: %v", err))
			continue
		}
		out = append(out, models.CollectionPoint{
			Name:       fields[1],
			Address:    fields[2],
			City:       fields[3],
			Latitude:   lat,
			Longitude:  lng,
			CapacityKg: capKg,
			Active:     active,
		})
		res.Success++
	}
	return out, res
}

func ParseCatalog(lines []string) ([]models.WasteCatalogItem, *ImportResult) {
	res := &ImportResult{Errors: []string{}}
	var out []models.WasteCatalogItem
	for i, line := range lines {
		n := i + 1
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields, err := splitLine(line)
		if err != nil {
			res.fail(n, err)
			continue
		}
		if isHeader(fields, CatalogHeader) {
			continue
		}
		if len(fields) < len(CatalogHeader) {
			res.fail(n, fmt.Errorf("expected %d columns, got %d", len(CatalogHeader), len(fields)))
			continue
		}
		price, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil || price < 0 {
			res.fail(n, fmt.Errorf("price_per_unit: invalid value %q", fields[4]))
			continue
		}
		active, err := strconv.ParseBool(fields[5])
		if err != nil {
			res.fail(n, fmt.Errorf("active: %v", err))
			continue
		}
		out = append(out, models.WasteCatalogItem{
			Name:         fields[1],
			Category:     fields[2],
			Unit:         fields[3],
			PricePerUnit: price,
			Active:       active,
		})
		res.Success++
	}
	return out, res
}
