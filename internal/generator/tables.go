package generator

import "github.com/fjod/go_storefront/internal/domain"

const (
	CategoryCoffee      = "coffee"
	CategoryBooks       = "books"
	CategoryClothing    = "clothing"
	CategoryElectronics = "electronics"
	CategoryFood        = "food"
	CategoryHome        = "home"
	CategoryBeauty      = "beauty"
	CategorySports      = "sports"
	CategoryGeneral     = "general"
)

// categoryKeywords is checked in order; the first category with a matching keyword wins.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{CategoryCoffee, []string{"coffee", "cafe"}},
	{CategoryBooks, []string{"book", "library"}},
	{CategoryClothing, []string{"clothing", "fashion", "apparel"}},
	{CategoryElectronics, []string{"tech", "electronic", "gadget"}},
	{CategoryFood, []string{"food", "grocery", "organic"}},
	{CategoryHome, []string{"home", "furniture", "decor"}},
	{CategoryBeauty, []string{"beauty", "cosmetic", "skincare"}},
	{CategorySports, []string{"sport", "fitness", "outdoor"}},
}

var storeNames = map[string][]string{
	CategoryCoffee:      {"Brew & Bean", "Coffee Corner", "Roasted Dreams", "The Daily Grind", "Bean There Coffee"},
	CategoryBooks:       {"Page Turner Books", "The Reading Nook", "Literary Haven", "Book Sanctuary", "Chapter & Verse"},
	CategoryClothing:    {"Style Studio", "Fashion Forward", "Wardrobe Essentials", "Trendy Threads", "Chic Boutique"},
	CategoryElectronics: {"Tech Hub", "Digital World", "Gadget Galaxy", "Electronic Essentials", "Tech Trends"},
	CategoryFood:        {"Fresh Market", "Gourmet Goods", "Organic Harvest", "Foodie Paradise", "Farm to Table"},
	CategoryHome:        {"Home Haven", "Cozy Corner", "Interior Inspirations", "House & Home", "Living Spaces"},
	CategoryBeauty:      {"Beauty Bliss", "Glow & Grace", "Radiant Beauty", "Pure Elegance", "Beauty Boutique"},
	CategorySports:      {"Active Gear", "Sports Central", "Fitness First", "Athletic Edge", "Outdoor Adventures"},
	CategoryGeneral:     {"Premium Store", "Quality Goods", "The Marketplace", "Elite Shop", "Prime Products"},
}

var storeDescriptions = map[string]string{
	CategoryCoffee:      "Premium coffee beans and brewing equipment for the perfect cup every time.",
	CategoryBooks:       "Curated collection of books across all genres for every type of reader.",
	CategoryClothing:    "Stylish and comfortable clothing for modern fashion enthusiasts.",
	CategoryElectronics: "Latest technology and electronic devices for your digital lifestyle.",
	CategoryFood:        "Fresh, organic, and gourmet food products for conscious consumers.",
	CategoryHome:        "Beautiful home decor and furniture to create your perfect living space.",
	CategoryBeauty:      "Premium beauty and skincare products for your self-care routine.",
	CategorySports:      "High-quality sports and fitness equipment for active lifestyles.",
	CategoryGeneral:     "Carefully selected products for discerning customers.",
}

var themes = map[string]domain.StoreTheme{
	CategoryCoffee:      {PrimaryColor: "#8B4513", SecondaryColor: "#D2691E", BackgroundColor: "#FFF8DC", TextColor: "#2F1B14", AccentColor: "#CD853F"},
	CategoryBooks:       {PrimaryColor: "#2F4F4F", SecondaryColor: "#708090", BackgroundColor: "#F5F5DC", TextColor: "#2F4F4F", AccentColor: "#8B4513"},
	CategoryClothing:    {PrimaryColor: "#FF1493", SecondaryColor: "#FFB6C1", BackgroundColor: "#FFF0F5", TextColor: "#2F2F2F", AccentColor: "#FF69B4"},
	CategoryElectronics: {PrimaryColor: "#4169E1", SecondaryColor: "#87CEEB", BackgroundColor: "#F0F8FF", TextColor: "#2F2F2F", AccentColor: "#1E90FF"},
	CategoryFood:        {PrimaryColor: "#228B22", SecondaryColor: "#90EE90", BackgroundColor: "#F0FFF0", TextColor: "#2F2F2F", AccentColor: "#32CD32"},
	CategoryHome:        {PrimaryColor: "#A0522D", SecondaryColor: "#D2B48C", BackgroundColor: "#FDF5E6", TextColor: "#2F2F2F", AccentColor: "#CD853F"},
	CategoryBeauty:      {PrimaryColor: "#DA70D6", SecondaryColor: "#DDA0DD", BackgroundColor: "#FFF0FF", TextColor: "#2F2F2F", AccentColor: "#FF69B4"},
	CategorySports:      {PrimaryColor: "#FF4500", SecondaryColor: "#FF7F50", BackgroundColor: "#FFF8DC", TextColor: "#2F2F2F", AccentColor: "#FF6347"},
	CategoryGeneral:     {PrimaryColor: "#4682B4", SecondaryColor: "#87CEEB", BackgroundColor: "#F8F8FF", TextColor: "#2F2F2F", AccentColor: "#5F9EA0"},
}

// productTemplates only has dedicated rows for some categories; the rest use general.
var productTemplates = map[string][]domain.ProductDraft{
	CategoryCoffee: {
		{Name: "Ethiopian Single Origin", Description: "Rich, fruity coffee with notes of blueberry and chocolate", Price: 24.99, Category: "Coffee Beans"},
		{Name: "Colombian Medium Roast", Description: "Smooth, balanced coffee with caramel undertones", Price: 19.99, Category: "Coffee Beans"},
		{Name: "French Press", Description: "Classic 34oz French press for perfect coffee extraction", Price: 39.99, Category: "Brewing Equipment"},
		{Name: "Pour Over Dripper", Description: "Ceramic dripper for precise pour-over brewing", Price: 29.99, Category: "Brewing Equipment"},
		{Name: "Coffee Grinder", Description: "Burr grinder for consistent coffee grounds", Price: 149.99, Category: "Brewing Equipment"},
		{Name: "Travel Mug", Description: "Insulated stainless steel travel mug", Price: 24.99, Category: "Accessories"},
		{Name: "Espresso Blend", Description: "Bold espresso blend with crema-rich extraction", Price: 22.99, Category: "Coffee Beans"},
		{Name: "Cold Brew Concentrate", Description: "Smooth cold brew concentrate, just add water", Price: 14.99, Category: "Ready to Drink"},
		{Name: "Coffee Filters", Description: "Premium paper filters for drip coffee", Price: 8.99, Category: "Accessories"},
		{Name: "Milk Frother", Description: "Electric milk frother for lattes and cappuccinos", Price: 34.99, Category: "Accessories"},
		{Name: "Guatemalan Dark Roast", Description: "Full-bodied dark roast with smoky finish", Price: 21.99, Category: "Coffee Beans"},
		{Name: "Coffee Scale", Description: "Digital scale for precise coffee measurements", Price: 49.99, Category: "Brewing Equipment"},
		{Name: "Ceramic Mug Set", Description: "Set of 4 artisan ceramic coffee mugs", Price: 36.99, Category: "Accessories"},
		{Name: "Decaf Brazil", Description: "Smooth decaffeinated coffee with chocolate notes", Price: 18.99, Category: "Coffee Beans"},
		{Name: "Coffee Subscription Box", Description: "Monthly delivery of premium coffee beans", Price: 29.99, Category: "Subscriptions"},
	},
	CategoryBooks: {
		{Name: "The Art of Fiction", Description: "Masterclass in creative writing techniques", Price: 16.99, Category: "Writing"},
		{Name: "Digital Marketing Guide", Description: "Complete guide to modern marketing strategies", Price: 24.99, Category: "Business"},
		{Name: "Mindfulness Journal", Description: "Guided journal for daily mindfulness practice", Price: 14.99, Category: "Self-Help"},
		{Name: "Classic Literature Set", Description: "Collection of 10 timeless literary classics", Price: 89.99, Category: "Classics"},
		{Name: "Science Fiction Anthology", Description: "Award-winning sci-fi short stories", Price: 19.99, Category: "Science Fiction"},
		{Name: "Cookbook Collection", Description: "International recipes from around the world", Price: 32.99, Category: "Cooking"},
		{Name: "History of Art", Description: "Comprehensive guide to art movements and masters", Price: 45.99, Category: "Art"},
		{Name: "Programming for Beginners", Description: "Learn to code with practical examples", Price: 29.99, Category: "Technology"},
		{Name: "Mystery Novel Bundle", Description: "Thrilling mystery novels by bestselling authors", Price: 24.99, Category: "Mystery"},
		{Name: "Travel Photography", Description: "Stunning photography from around the globe", Price: 34.99, Category: "Photography"},
		{Name: "Philosophy Essentials", Description: "Introduction to fundamental philosophical concepts", Price: 22.99, Category: "Philosophy"},
		{Name: "Gardening Handbook", Description: "Complete guide to home gardening", Price: 18.99, Category: "Gardening"},
		{Name: "Biography Collection", Description: "Inspiring biographies of influential figures", Price: 27.99, Category: "Biography"},
		{Name: "Poetry Anthology", Description: "Beautiful collection of contemporary poetry", Price: 15.99, Category: "Poetry"},
		{Name: "Business Strategy Guide", Description: "Strategic thinking for modern business leaders", Price: 31.99, Category: "Business"},
	},
	CategoryGeneral: {
		{Name: "Premium Product A", Description: "High-quality product with exceptional features", Price: 49.99, Category: "Premium"},
		{Name: "Essential Item B", Description: "Must-have item for everyday use", Price: 24.99, Category: "Essentials"},
		{Name: "Luxury Collection C", Description: "Exclusive luxury item with premium materials", Price: 199.99, Category: "Luxury"},
		{Name: "Practical Solution D", Description: "Practical and efficient solution for daily needs", Price: 34.99, Category: "Practical"},
		{Name: "Innovation E", Description: "Cutting-edge innovation with modern design", Price: 79.99, Category: "Innovation"},
		{Name: "Classic Choice F", Description: "Timeless classic that never goes out of style", Price: 44.99, Category: "Classic"},
		{Name: "Eco-Friendly G", Description: "Sustainable and environmentally conscious option", Price: 29.99, Category: "Eco-Friendly"},
		{Name: "Professional H", Description: "Professional-grade quality for serious users", Price: 149.99, Category: "Professional"},
		{Name: "Compact I", Description: "Space-saving compact design without compromise", Price: 39.99, Category: "Compact"},
		{Name: "Versatile J", Description: "Multi-purpose item with various applications", Price: 54.99, Category: "Versatile"},
		{Name: "Premium Bundle K", Description: "Complete bundle with everything you need", Price: 99.99, Category: "Bundles"},
		{Name: "Limited Edition L", Description: "Exclusive limited edition with unique features", Price: 89.99, Category: "Limited"},
		{Name: "Starter Kit M", Description: "Perfect starter kit for beginners", Price: 19.99, Category: "Starter"},
		{Name: "Advanced N", Description: "Advanced features for experienced users", Price: 129.99, Category: "Advanced"},
		{Name: "Value Pack O", Description: "Great value pack with multiple items", Price: 64.99, Category: "Value"},
	},
}

var aboutTemplates = map[string]string{
	CategoryCoffee:  "Welcome to our coffee haven! We are passionate about bringing you the finest coffee beans from around the world. Our journey began with a simple mission: to share the perfect cup of coffee with fellow enthusiasts. From single-origin beans to expertly crafted blends, every product in our collection is chosen for its exceptional quality and unique character.",
	CategoryBooks:   "Our bookstore is a sanctuary for readers and knowledge seekers. We believe in the power of books to transform lives, spark imagination, and connect us to different worlds. Our carefully curated collection spans every genre and interest, from timeless classics to contemporary bestsellers, ensuring there is something special for every reader.",
	CategoryGeneral: "We are dedicated to providing exceptional products that enhance your daily life. Our commitment to quality, customer satisfaction, and innovation drives everything we do. Each item in our collection is carefully selected to meet the highest standards of excellence and value.",
}
