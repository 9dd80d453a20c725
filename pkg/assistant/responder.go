package assistant

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/shopmate/shopmate/pkg/catalog"
	"github.com/shopmate/shopmate/pkg/models"
)

const unknownMessage = "I'm not sure how to help with that. You can ask me to find products, navigate to different sections, add items to your cart, or get information about our website."

// contextFreeIntents answer from canned responses without entities or
// caller-supplied data.
var contextFreeIntents = map[string]bool{
	catalog.IntentGreeting:       true,
	catalog.IntentGoodbye:        true,
	catalog.IntentThanks:         true,
	catalog.IntentHelp:           true,
	catalog.IntentShippingInfo:   true,
	catalog.IntentReturnPolicy:   true,
	catalog.IntentPaymentMethods: true,
	catalog.IntentPromoCode:      true,
}

var titleCaser = cases.Title(language.English)

// Respond generates the response for a detected intent and updates the
// caller's context as a side effect. The sentiment stored in the context is
// scored on the intent label, not the utterance.
func (s *Service) Respond(
	ctx context.Context,
	intent string,
	entities map[string]string,
	userID string,
	products []models.Product,
	cart []models.CartItem,
) (*models.Response, error) {
	response, shown := s.dispatch(intent, entities, products, cart)

	sentiment := s.sentiment.Score(intent)
	if _, err := s.store.Update(ctx, userID, func(uc *models.UserContext) {
		uc.Sentiment = sentiment
		uc.LastIntent = intent
		if len(shown) > 0 {
			uc.LastProductsShown = shown
		}
	}); err != nil {
		return nil, err
	}

	return response, nil
}

// dispatch builds the response and reports any products to remember in the
// user context (capped at models.MaxProductsShown).
func (s *Service) dispatch(
	intent string,
	entities map[string]string,
	products []models.Product,
	cart []models.CartItem,
) (*models.Response, []models.Product) {
	if contextFreeIntents[intent] {
		return &models.Response{
			Message: s.pickResponse(intent),
			Type:    intent,
		}, nil
	}

	switch intent {
	case catalog.IntentFindProduct:
		if query, ok := entities[EntityProductQuery]; ok {
			return s.findProduct(query, products)
		}
	case catalog.IntentAddToCart:
		if name, ok := entities[EntityProductName]; ok {
			return s.addToCart(name, products), nil
		}
	case catalog.IntentNavigation:
		if destination, ok := entities[EntityDestination]; ok {
			return s.navigate(destination, products), nil
		}
	case catalog.IntentCartStatus:
		return s.cartStatus(cart), nil
	case catalog.IntentOrderStatus:
		return &models.Response{
			Message: s.pickResponse(intent),
			Type:    intent,
			Action:  "suggestNavigation:orders",
		}, nil
	case catalog.IntentSectionInquiry:
		if section, ok := entities[EntitySection]; ok {
			return s.sectionInfo(section), nil
		}
	case catalog.IntentProductInfo:
		if name, ok := entities[EntityProductName]; ok {
			return s.productInfo(name, products), nil
		}
	}

	// Unknown intent, or a context-requiring intent whose entity was not
	// extracted.
	return &models.Response{
		Message: unknownMessage,
		Type:    IntentUnknown,
	}, nil
}

func (s *Service) pickResponse(intentName string) string {
	intent, ok := catalog.IntentByName(intentName)
	if !ok || len(intent.Responses) == 0 {
		return unknownMessage
	}
	return intent.Responses[s.selector.Pick(len(intent.Responses))]
}

func (s *Service) findProduct(query string, products []models.Product) (*models.Response, []models.Product) {
	if len(products) == 0 {
		return &models.Response{
			Message: fmt.Sprintf("I'll search for '%s' products for you.", query),
			Type:    "product_search",
			Action:  "search:" + query,
		}, nil
	}

	q := strings.ToLower(query)
	var matches []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			matches = append(matches, p)
		}
	}

	if len(matches) == 0 {
		return &models.Response{
			Message: fmt.Sprintf("I couldn't find any products matching '%s'. Would you like to try a different search term?", query),
			Type:    "no_results",
		}, nil
	}

	shown := matches
	if len(shown) > models.MaxProductsShown {
		shown = shown[:models.MaxProductsShown]
	}
	return &models.Response{
		Message:  fmt.Sprintf("I found %d products matching '%s'. Here are some options:", len(matches), query),
		Type:     "product_results",
		Products: shown,
		Action:   "search:" + query,
	}, shown
}

func (s *Service) addToCart(name string, products []models.Product) *models.Response {
	if len(products) == 0 {
		return &models.Response{
			Message: fmt.Sprintf("I'll add '%s' to your cart if it's available.", name),
			Type:    "add_to_cart_intent",
			Action:  "addToCart:" + name,
		}
	}

	if product := firstProductByName(products, name); product != nil {
		return &models.Response{
			Message: fmt.Sprintf("I've added %s to your cart.", product.Name),
			Type:    "add_to_cart_success",
			Product: product,
			Action:  "addToCart:" + product.ID.String(),
		}
	}

	return &models.Response{
		Message: fmt.Sprintf("I couldn't find a product called '%s'. Would you like me to search for it?", name),
		Type:    "product_not_found",
		Action:  "search:" + name,
	}
}

func (s *Service) navigate(destination string, products []models.Product) *models.Response {
	dest := strings.ToLower(destination)

	for i := range catalog.Sections {
		section := &catalog.Sections[i]
		if dest == section.Name || equalsAny(dest, section.Aliases) {
			return &models.Response{
				Message: fmt.Sprintf("Taking you to the %s section. %s", section.Name, section.Description),
				Type:    "navigation",
				Action:  "navigate:" + section.Path,
			}
		}
	}

	for _, category := range catalog.Categories {
		if strings.Contains(dest, category) {
			return &models.Response{
				Message: fmt.Sprintf("Showing you our %s collection.", category),
				Type:    "category_navigation",
				Action:  "category:" + category,
			}
		}
	}

	for i := range products {
		if strings.Contains(strings.ToLower(products[i].Name), dest) {
			return &models.Response{
				Message: fmt.Sprintf("Taking you to the %s product page.", products[i].Name),
				Type:    "product_navigation",
				Action:  "navigate:/product/" + products[i].ID.String(),
			}
		}
	}

	return &models.Response{
		Message: fmt.Sprintf("I'm not sure where '%s' is. You can navigate to Home, Categories, Orders, Wishlist, Deals, or Account.", destination),
		Type:    "navigation_error",
	}
}

func (s *Service) cartStatus(cart []models.CartItem) *models.Response {
	if len(cart) == 0 {
		return &models.Response{
			Message: "Your cart is currently empty. Would you like me to help you find some products?",
			Type:    "empty_cart",
		}
	}

	var total float64
	var itemCount int
	for _, item := range cart {
		total += item.Price * float64(item.Quantity)
		itemCount += item.Quantity
	}

	plural := "s"
	if itemCount == 1 {
		plural = ""
	}
	return &models.Response{
		Message: fmt.Sprintf(
			"You have %d item%s in your cart with a total of $%.2f. Would you like to checkout or continue shopping?",
			itemCount, plural, total,
		),
		Type:   "cart_status",
		Action: "suggestCheckout",
	}
}

func (s *Service) sectionInfo(sectionName string) *models.Response {
	if section, ok := catalog.SectionByName(sectionName); ok {
		return &models.Response{
			Message: fmt.Sprintf(
				"Yes, we have a %s section. %s Would you like me to take you there?",
				titleCaser.String(sectionName), section.Description,
			),
			Type:   "section_info",
			Action: "suggestNavigation:" + sectionName,
		}
	}

	return &models.Response{
		Message: fmt.Sprintf("I'm not sure about a section called '%s'. Our main sections are Home, Categories, Orders, Wishlist, Deals, and Account.", sectionName),
		Type:    "section_unknown",
	}
}

func (s *Service) productInfo(name string, products []models.Product) *models.Response {
	if len(products) == 0 {
		return &models.Response{
			Message: fmt.Sprintf("I'll look up information about '%s' for you.", name),
			Type:    "product_info_intent",
		}
	}

	product := firstProductByName(products, name)
	if product == nil {
		return &models.Response{
			Message: fmt.Sprintf("I couldn't find information about '%s'. Would you like me to search for similar products?", name),
			Type:    "product_not_found",
			Action:  "search:" + name,
		}
	}

	priceInfo := fmt.Sprintf("$%.2f", product.Price)
	if product.Discount > 0 {
		discounted := product.Price * (1 - product.Discount/100)
		priceInfo = fmt.Sprintf("$%.2f ($%.2f - %s%% off)", discounted, product.Price, formatNumber(product.Discount))
	}
	rating := "N/A"
	if product.Rating != nil {
		rating = formatNumber(*product.Rating)
	}

	return &models.Response{
		Message: fmt.Sprintf(
			"%s: %s It costs %s and has a rating of %s out of 5 stars. Would you like to see more details or add it to your cart?",
			product.Name, product.Description, priceInfo, rating,
		),
		Type:    "product_info",
		Product: product,
		Action:  "showProduct:" + product.ID.String(),
	}
}

// firstProductByName returns the first product whose name contains the
// query, case-insensitively.
func firstProductByName(products []models.Product, query string) *models.Product {
	q := strings.ToLower(query)
	for i := range products {
		if strings.Contains(strings.ToLower(products[i].Name), q) {
			return &products[i]
		}
	}
	return nil
}

func equalsAny(s string, candidates []string) bool {
	for _, candidate := range candidates {
		if s == strings.ToLower(candidate) {
			return true
		}
	}
	return false
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
