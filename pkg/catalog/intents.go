// Package catalog holds the static intent and site registries. All data is
// loaded once and immutable at runtime; iteration order is significant for
// tie-breaking, so registries are ordered slices rather than maps.
package catalog

// Intent names. A detector may additionally return "unknown", which is not
// a catalog entry.
const (
	IntentGreeting       = "greeting"
	IntentGoodbye        = "goodbye"
	IntentThanks         = "thanks"
	IntentHelp           = "help"
	IntentFindProduct    = "find_product"
	IntentAddToCart      = "add_to_cart"
	IntentCartStatus     = "cart_status"
	IntentNavigation     = "navigation"
	IntentProductInfo    = "product_info"
	IntentOrderStatus    = "order_status"
	IntentShippingInfo   = "shipping_info"
	IntentReturnPolicy   = "return_policy"
	IntentPaymentMethods = "payment_methods"
	IntentSectionInquiry = "section_inquiry"
	IntentPromoCode      = "promo_code"
)

// Intent is a single catalog entry. Patterns are substrings matched
// case-insensitively against the raw input, in order. Responses holds the
// canned variants for context-free intents.
type Intent struct {
	Name            string
	Patterns        []string
	ContextRequired bool
	Responses       []string
}

// Intents is the ordered intent registry. Declaration order is the
// tie-break order for pattern matches at equal positions.
var Intents = []Intent{
	{
		Name:     IntentGreeting,
		Patterns: []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening", "howdy"},
		Responses: []string{
			"Hello! How can I help with your shopping today?",
			"Hi there! What are you looking for today?",
			"Hello! I'm your shopping assistant. How can I assist you?",
		},
	},
	{
		Name:     IntentGoodbye,
		Patterns: []string{"bye", "goodbye", "see you", "see you later", "talk to you later"},
		Responses: []string{
			"Goodbye! Have a great day!",
			"Thanks for shopping with us. Goodbye!",
			"See you next time!",
		},
	},
	{
		Name:     IntentThanks,
		Patterns: []string{"thanks", "thank you", "appreciate it", "thanks a lot"},
		Responses: []string{
			"You're welcome!",
			"Happy to help!",
			"My pleasure!",
		},
	},
	{
		Name:     IntentHelp,
		Patterns: []string{"help", "what can you do", "how do you work", "what are your features"},
		Responses: []string{
			"I can help you find products, navigate the website, add items to your cart, and answer questions about our store. Just ask!",
			"I'm your shopping assistant. I can search for products, provide information about our website sections, help with your cart, and more.",
		},
	},
	{
		Name:            IntentFindProduct,
		Patterns:        []string{"find", "search for", "looking for", "show me", "do you have", "i need", "i want", "i'm looking for"},
		ContextRequired: true,
	},
	{
		Name:            IntentAddToCart,
		Patterns:        []string{"add to cart", "buy", "purchase", "get", "i want to buy", "i want to purchase"},
		ContextRequired: true,
	},
	{
		Name:     IntentCartStatus,
		Patterns: []string{"what's in my cart", "show my cart", "cart contents", "items in cart", "what do i have in my cart"},
		Responses: []string{
			"I'll check your cart for you.",
			"Let me show you what's in your cart.",
		},
	},
	{
		Name:            IntentNavigation,
		Patterns:        []string{"go to", "open", "show me", "navigate to", "take me to", "i want to see"},
		ContextRequired: true,
	},
	{
		Name:            IntentProductInfo,
		Patterns:        []string{"tell me about", "details about", "information on", "specs for", "features of", "what can you tell me about"},
		ContextRequired: true,
	},
	{
		Name:     IntentOrderStatus,
		Patterns: []string{"where is my order", "order status", "track my order", "when will my order arrive", "my order"},
		Responses: []string{
			"I can help you check your order status. Please go to the Orders section to view your order history and tracking information.",
			"You can track your order in the Orders section. Would you like me to take you there?",
		},
	},
	{
		Name:     IntentShippingInfo,
		Patterns: []string{"shipping", "delivery", "how long does shipping take", "shipping cost", "free shipping", "when will it arrive"},
		Responses: []string{
			"We offer free standard shipping on all orders over $50. Standard shipping takes 3-5 business days. Express shipping is available for an additional fee and delivers within 1-2 business days.",
			"Our standard shipping takes 3-5 business days. Orders over $50 qualify for free shipping. Express shipping (1-2 days) is available for an additional fee.",
		},
	},
	{
		Name:     IntentReturnPolicy,
		Patterns: []string{"return policy", "can I return", "how to return", "refund", "exchange", "i don't like my order"},
		Responses: []string{
			"Our return policy allows you to return items within 30 days of delivery for a full refund. Returns are free and can be initiated from the Orders section of your account.",
			"You can return any item within 30 days of delivery for a full refund. To start a return, go to the Orders section in your account.",
		},
	},
	{
		Name:     IntentPaymentMethods,
		Patterns: []string{"payment methods", "how can I pay", "do you accept", "credit card", "paypal", "how do i pay"},
		Responses: []string{
			"We accept all major credit cards (Visa, Mastercard, American Express), PayPal, and Apple Pay. All payment information is securely processed.",
			"You can pay using credit cards, PayPal, or Apple Pay. All transactions are secure and encrypted.",
		},
	},
	{
		Name:            IntentSectionInquiry,
		Patterns:        []string{"do you have", "is there", "where is", "how do i find", "can i find"},
		ContextRequired: true,
	},
	{
		Name:     IntentPromoCode,
		Patterns: []string{"promo code", "discount code", "coupon", "offer", "deal", "sale"},
		Responses: []string{
			"You can use the promo code 'WELCOME10' for 10% off your first order. We also have seasonal promotions in our Deals section.",
			"Try using the promo code 'WELCOME10' for 10% off your order. You can apply it during checkout.",
		},
	},
}

var intentIndex = buildIntentIndex()

func buildIntentIndex() map[string]*Intent {
	index := make(map[string]*Intent, len(Intents))
	for i := range Intents {
		index[Intents[i].Name] = &Intents[i]
	}
	return index
}

// IntentByName returns the catalog entry for name.
func IntentByName(name string) (*Intent, bool) {
	intent, ok := intentIndex[name]
	return intent, ok
}

// PatternsFor returns the trigger patterns for the named intent, or nil if
// the intent is not in the catalog.
func PatternsFor(name string) []string {
	if intent, ok := intentIndex[name]; ok {
		return intent.Patterns
	}
	return nil
}
