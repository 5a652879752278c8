package parser

import (
	"context"
	"fmt"
	"strings"

	"github.com/beatrizodsk/popmenu-api/internal/domain"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type GoogleSheetsParser struct {
	service *sheets.Service
}

type Config struct {
	CredentialsJSON []byte
}

func New(cfg Config) (*GoogleSheetsParser, error) {
	ctx := context.Background()

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(cfg.CredentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GoogleSheetsParser{
		service: service,
	}, nil
}

// ParseDocument reads a spreadsheet laid out as denormalized rows
// (restaurant | menu | item name | price, header in row one) and
// assembles the same import document shape the JSON endpoint accepts,
// so sheet imports run through the identical reconcile pipeline. Blank
// restaurant and menu cells carry the previous value forward.
func (p *GoogleSheetsParser) ParseDocument(ctx context.Context, spreadsheetID string) (*domain.ImportDocument, error) {
	readRange := "A:D"
	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("no data found in spreadsheet")
	}

	doc := &domain.ImportDocument{}

	var currentRestaurant *domain.RestaurantInput
	var currentMenu *domain.MenuInput

	flushMenu := func() {
		if currentRestaurant != nil && currentMenu != nil {
			currentRestaurant.Menus = append(currentRestaurant.Menus, *currentMenu)
		}
		currentMenu = nil
	}
	flushRestaurant := func() {
		flushMenu()
		if currentRestaurant != nil {
			doc.Restaurants = append(doc.Restaurants, *currentRestaurant)
		}
		currentRestaurant = nil
	}

	// skip header
	for i := 1; i < len(resp.Values); i++ {
		row := resp.Values[i]
		if len(row) == 0 {
			continue
		}

		restaurantName := cell(row, 0)
		menuName := cell(row, 1)
		itemName := cell(row, 2)
		priceText := cell(row, 3)

		if restaurantName != "" {
			flushRestaurant()
			currentRestaurant = &domain.RestaurantInput{Name: restaurantName}
		}
		if currentRestaurant == nil {
			return nil, fmt.Errorf("row %d has no restaurant", i+1)
		}

		if menuName != "" {
			flushMenu()
			currentMenu = &domain.MenuInput{Name: menuName}
		}

		if itemName == "" {
			continue
		}
		if currentMenu == nil {
			return nil, fmt.Errorf("row %d has an item but no menu", i+1)
		}

		name := itemName
		item := domain.MenuItemInput{Name: &name}
		if priceText != "" {
			item.Price = domain.StringPrice(priceText)
		}
		currentMenu.MenuItems = append(currentMenu.MenuItems, item)
	}

	flushRestaurant()

	return doc, nil
}

func cell(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[i]))
}
