package taxonomy

// Default returns the built-in real-estate marketing taxonomy. Theme order
// is significant: single-theme classification resolves ties by picking the
// first matching theme in this order. A few keywords appear under more
// than one theme on purpose (a pool is both an amenity and an activity).
func Default() *Taxonomy {
	return New([]Theme{
		{Name: "Sustainability", Keywords: []string{
			"solar", "eco", "green", "leed", "renewable", "sustainable", "energy-efficient", "water saving",
			"recycled", "salvaged", "cork", "hemp", "rammed earth", "bamboo", "clay plaster", "greywater", "composting",
			"carbon footprint", "net-zero", "passive design", "insulation", "low-flow", "rainwater", "green building",
			"carbon neutral", "green energy", "eco-friendly", "sustainable design", "sustainable architecture",
			"environmentally friendly", "clean energy", "energy-efficient appliances", "solar panels", "green roofs",
		}},
		{Name: "Smart Home Technology", Keywords: []string{
			"smart", "automation", "voice control", "connectivity", "remote access", "security", "alexa", "smart meters",
			"smart locks", "home automation", "remote surveillance", "motion sensors", "ai-powered", "energy monitoring",
			"virtual concierge", "smart thermostat", "app-controlled", "voice assistant",
			"smart lights", "home assistant", "intelligent home", "smart home system", "IoT", "connected home",
			"smart appliances", "automated home", "home automation system", "smart lighting",
		}},
		{Name: "Wellness Amenities", Keywords: []string{
			"meditation", "spa", "health club", "wellness center", "hydrotherapy", "soaking tub", "massage", "therapy",
			"sauna", "nutritional counseling", "jetted bathtub", "wellness", "relaxation", "well-being", "health retreat",
			"meditation room", "rejuvenation", "holistic health",
		}},
		{Name: "House Features", Keywords: []string{
			"open floor plan", "granite countertops", "stainless steel appliances", "hardwood floors", "walk-in closet",
			"master suite", "fireplace", "attached garage", "high ceilings", "laundry room", "bonus room", "covered patio",
			"central air", "kitchen island", "breakfast bar", "pantry", "mudroom", "wine cellar", "nanny room", "sunroom",
			"wet bar", "vaulted ceilings", "custom cabinetry", "spacious", "terrace", "balcony", "large windows",
			"modern kitchen", "open-plan", "wood floors", "recessed lighting", "crown molding", "storage space", "basement",
			"stainless steel", "walk-in pantry", "bay window", "stone countertops", "luxury bathroom", "home office",
			"high ceilings", "floor-to-ceiling windows", "chef’s kitchen", "custom-built",
		}},
		{Name: "Interior Design", Keywords: []string{
			"luxury flooring", "neutral palette", "architectural", "feature walls", "tile work", "backsplash", "cozy",
			"modern", "classic", "bohemian", "contemporary", "minimalist", "industrial", "farmhouse", "scandinavian",
			"mediterranean", "victorian", "craftsman", "mid-century", "eclectic", "transitional", "rustic", "coastal",
			"colonial", "art deco", "tudor", "asian-inspired", "chic", "prestigious", "custom homes", "timeless",
			"award-winning", "luxurious", "sleek design", "chandeliers", "furniture design", "high-end finishes",
			"open shelving", "design trends", "custom-built", "artsy", "statement pieces",
		}},
		{Name: "Sports/Activities", Keywords: []string{
			"tennis", "basketball", "soccer", "baseball", "volleyball", "fitness", "running", "golf", "yoga", "cycling",
			"crossfit", "climbing", "dance", "aerobics", "training", "billiards", "sports", "bike", "jogging", "gymnasium",
			"swimming", "gym", "martial arts", "gymnastics", "sports court", "fitness classes", "exercise", "swimming pool",
			"fitness equipment", "athletics",
		}},
		{Name: "Amenities", Keywords: []string{
			"gated community", "security", "cameras", "access control", "club", "pool", "fitness center", "neighborhood watch",
			"visitor management", "bbq", "community parties", "outdoor concerts", "events", "picnic", "craft nights",
			"holiday celebrations", "cultural festivals", "cinema", "playground", "clubhouse", "gym", "spa", "restaurant",
			"barbecue area", "pet park", "garden", "swimming pool", "fitness studio", "community garden",
		}},
		{Name: "Safety", Keywords: []string{
			"security patrols", "emergency", "motion sensor", "crime prevention", "controlled access", "well-lit", "intercom",
			"evacuation", "fire safety", "alarms", "visitor management", "alarm system", "surveillance", "emergency exit",
			"fire alarm", "security cameras", "fenced perimeter", "security gate", "neighborhood patrol", "smoke detectors",
			"secure entrance",
		}},
		{Name: "Entertainment", Keywords: []string{
			"gaming", "game room", "movie theater", "bbq area", "live music", "comedy shows", "cooking classes",
			"art workshops", "talent shows", "family game nights", "coffee bar", "bars", "lounge", "entertainment",
			"event space", "cinema", "concerts", "karaoke", "poolside bar", "family events", "nightlife", "music room",
			"comedy club", "concert venue",
		}},
		{Name: "Working Space", Keywords: []string{
			"co-working", "business center", "conference rooms", "private offices", "high-speed internet", "printing",
			"copying", "workstations", "meeting pods", "quiet zones", "collaborative workspace", "networking events",
			"workshops", "seminars", "lounge areas", "flexible workspace", "telecommuting", "video conferencing", "hot desk",
			"meeting space", "remote work", "business lounge", "coworking space", "office suite", "tech-enabled office",
		}},
		{Name: "Greenery", Keywords: []string{
			"community gardens", "parks", "nature trails", "green belts", "arboretum", "botanical", "green rooftops",
			"urban forests", "rain gardens", "butterfly gardens", "shade trees", "flowering", "orchards", "rooftop gardens",
			"tree-lined", "green vibes", "green living", "nature", "lagoon", "river", "vertical gardens", "outdoor yoga deck",
			"botanical gardens", "forest area", "eco gardens", "native plants", "green spaces", "organic garden",
			"landscape design", "green walls", "environmental design", "outdoor lounge",
		}},
		{Name: "Pet-Friendly Amenities", Keywords: []string{
			"dog park", "pet grooming", "pet clinic", "pet events", "pet spa", "pet concierge", "pet trails",
			"pet waste stations", "pet friendly", "dog-friendly", "pet lounge", "dog walking area", "pet play area",
			"pet park", "cat-friendly", "pet relief station", "pet-friendly cafe", "pet daycare",
		}},
		{Name: "Disabled People Amenities", Keywords: []string{
			"accessible", "wheelchair", "elevators", "handicap", "roll-in showers", "lowered countertops",
			"accessible pathways", "visual fire alarms", "hearing loop", "accessible pathways", "adapted bathrooms",
			"low counters", "wheelchair ramps", "elevator access", "accessible parking", "accessible showers",
			"assistive devices", "visual aids",
		}},
		{Name: "Children Amenities", Keywords: []string{
			"playground", "splash pad", "kids club", "nursery", "childcare", "babysitting", "scooter lanes",
			"children's library", "storytime", "summer camps", "teen center", "school bus", "play area", "kids zone",
			"children's pool", "family entertainment", "playhouse", "kids events", "child-friendly", "safe play areas",
			"sandbox", "youth programs",
		}},
		{Name: "Parking Amenities", Keywords: []string{
			"garage", "driveway", "carport", "parking", "valet", "bike racks", "tandem", "remote-controlled garage",
			"on-street parking", "car wash", "electric vehicle charging", "covered parking", "parking garage",
			"multi-level parking", "secure parking", "visitor parking", "car charging stations",
			"parking space availability", "dedicated parking",
		}},
		{Name: "Views", Keywords: []string{
			"panoramic views", "city skyline", "mountain views", "waterfront", "golf course views", "lake views",
			"oceanfront", "sunset views", "scenic", "coastalliving", "lagoon", "river", "mountain view", "cityscape",
			"scenic view", "water views", "beachfront", "sunrise view", "sunset views", "park view", "forest view",
			"skyline",
		}},
		{Name: "Accessibility", Keywords: []string{
			"quick access", "highway", "marina", "malls", "walking distance", "minutes' drive", "connectivity", "metro",
			"train", "bus station", "prime location", "easy access", "close to amenities", "public transport", "walkable",
			"central location", "bike paths", "nearby services", "close to shopping", "public transportation access",
		}},
		{Name: "Lifestyle", Keywords: []string{
			"luxury", "modern living", "convenience", "elegant", "city living", "first-class", "comfort", "beachside",
			"urban", "elegant ambiance", "prestigious", "resort-style", "retreat", "work-life", "community living",
			"minimalist design", "luxurious living", "exclusive living", "premium amenities", "luxury lifestyle",
			"urban living", "designer homes", "first-class living", "high-end living", "premium location", "urban chic",
		}},
		{Name: "Types of Residential Properties", Keywords: []string{
			"townhouse", "penthouse", "apartment", "glasshouse", "single-family", "duplex", "villa", "cottage", "bungalow",
			"loft", "studio apartment", "mobile home", "mansion", "ranch", "row house", "tiny house", "cluster home",
			"mixed-use", "student housing", "senior living", "digital nomad", "mansion", "luxury apartment",
			"gated community", "villa", "townhouse", "single-family home", "multi-family house", "condo", "loft",
			"new construction",
		}},
		{Name: "Branded Developments", Keywords: []string{
			"armani", "fendi", "missoni", "versace", "bulgari", "baccarat", "porsche", "bentley", "bugatti", "aston martin",
			"branded", "signature collection", "limited edition", "private lift", "concierge", "luxury branded",
			"exclusive development", "celebrity homes", "branded residences", "luxury brands", "signature homes",
			"premium developers", "designer homes", "luxury lifestyle",
		}},
	})
}
