package identity

// englishWords is the fixed 1626-word mnemonic list shared by this decode
// scheme: every word's first three characters are a unique prefix, which
// is what indexByPrefix relies on. The source data file this scheme
// normally ships alongside (e.g. session_py_client/english_words.json)
// wasn't available to copy verbatim in this environment; see DESIGN.md
// for how this list was reconstructed and what that means for
// interoperability with the spec's literal published test vectors.
var englishWords = [1626]string{
	"abacus", "abbey", "abducted", "ability", "ablaze", "abnormal", "aboard", "abrasive", "absence", "abuse",
	"abyss", "academy", "accent", "ace", "ache", "acid", "acorn", "acquire", "acre", "act",
	"acumen", "adapt", "add", "adept", "adhere", "adjacent", "admiral", "adobe", "adrift", "adult",
	"advance", "aerial", "afar", "affair", "afloat", "afraid", "after", "again", "age", "aggregate",
	"agile", "aglow", "ago", "agree", "ahead", "aid", "aim", "air", "aisle", "ajar",
	"akin", "alarm", "album", "alcove", "alert", "algebra", "alias", "alkaline", "allergy", "almond",
	"aloft", "alphabet", "already", "also", "altar", "aluminum", "always", "amaze", "amber", "amend",
	"amid", "ammonia", "among", "ample", "amuse", "analog", "anchor", "android", "anew", "angel",
	"animal", "ankle", "annoyed", "another", "answer", "ant", "anvil", "anxiety", "any", "apart",
	"apex", "aphid", "apiary", "apology", "appeal", "apricot", "aqua", "arbiter", "arcade", "ardor",
	"arena", "argue", "arise", "arm", "aroma", "arrange", "arsenal", "art", "asbestos", "ash",
	"aside", "ask", "asleep", "aspect", "assault", "asterisk", "asylum", "athlete", "atlas", "atom",
	"atrocity", "attach", "audio", "augment", "aunt", "aura", "auspice", "author", "avatar", "avenue",
	"aviator", "avocado", "await", "awesome", "awful", "awkward", "axe", "axis", "azalea", "azure",
	"baby", "back", "badge", "baffle", "bag", "balance", "bamboo", "banana", "barber", "base",
	"battle", "bauble", "bay", "beach", "become", "bed", "beef", "before", "began", "behalf",
	"being", "belief", "bemused", "bench", "bequest", "berry", "beside", "betray", "beverage", "beware",
	"beyond", "bias", "bicycle", "bigot", "bike", "bile", "bind", "biology", "biplane", "birch",
	"biscuit", "bite", "bizarre", "black", "bleak", "blind", "block", "blue", "boar", "bobcat",
	"body", "bogus", "boil", "bold", "bomb", "bond", "book", "border", "boss", "bother",
	"bounce", "bow", "box", "boy", "brace", "bread", "brick", "broccoli", "brush", "bubble",
	"buckle", "buddy", "buffalo", "bugle", "build", "bulb", "bumble", "bundle", "burden", "bus",
	"butter", "buxom", "buyer", "buzz", "bylaw", "byte", "cabin", "cactus", "cadaver", "caffeine",
	"cage", "cake", "calf", "camera", "canal", "capable", "car", "case", "cat", "cause",
	"cave", "ceiling", "celery", "cement", "census", "cereal", "chair", "cheap", "chicken", "chlorine",
	"choice", "chronic", "chuckle", "cider", "cigar", "cinema", "cipher", "circle", "citizen", "civil",
	"claim", "clean", "click", "clock", "club", "coach", "cobalt", "cocoa", "code", "coerce",
	"coffee", "cogent", "coherent", "coil", "collapse", "comb", "concert", "cook", "copper", "coral",
	"cost", "cotton", "couch", "cover", "cowboy", "coyote", "crack", "cream", "cricket", "crop",
	"crucial", "cry", "cube", "cuckoo", "cuddle", "culture", "cumin", "cup", "curious", "cushion",
	"cute", "cyborg", "cycle", "dabble", "dad", "dagger", "dainty", "dalmatian", "damage", "dance",
	"dapper", "daring", "dash", "database", "daughter", "dawn", "day", "deal", "debate", "decade",
	"dedicate", "deer", "defense", "degree", "dehydrate", "deity", "delay", "demand", "denial", "depart",
	"derive", "describe", "detail", "develop", "diagram", "dice", "diesel", "differ", "digital", "dilemma",
	"dimple", "dinner", "dioxide", "dipper", "direct", "disagree", "ditch", "divert", "dizzy", "doable",
	"doctor", "dodgy", "dog", "doily", "doll", "domain", "donate", "door", "dorsal", "dose",
	"double", "dove", "downfall", "draft", "dream", "drift", "drop", "drum", "dry", "dubious",
	"duck", "dueling", "dugout", "dullard", "dumb", "dune", "duplex", "during", "dust", "duty",
	"duvet", "dwarf", "dwell", "dynamic", "dyslexic", "eager", "early", "easily", "eatery", "eavesdrop",
	"ebony", "eccentric", "echo", "eclipse", "ecology", "ecstasy", "eczema", "edge", "edit", "educate",
	"eerie", "effort", "egg", "egress", "eight", "either", "eject", "elapse", "elbow", "elder",
	"electric", "elite", "elk", "elope", "else", "elude", "emanate", "embark", "emerge", "emigrate",
	"emotion", "employ", "emulate", "enable", "encamp", "end", "enemy", "enforce", "engage", "enhance",
	"enigma", "enjoy", "enlist", "enmity", "ennoble", "enough", "enrich", "ensure", "enter", "envelope",
	"enzyme", "episode", "epoch", "equal", "era", "erect", "ermine", "erode", "error", "erupt",
	"escape", "espouse", "essay", "estate", "etch", "eternal", "ethics", "etiquette", "eulogy", "evacuate",
	"evergreen", "evidence", "evoke", "exact", "excess", "execute", "exhaust", "exile", "exotic", "expand",
	"exquisite", "extend", "exuberant", "eye", "fabric", "face", "fade", "faint", "fall", "fame",
	"fan", "farm", "fashion", "fat", "fault", "favor", "fawn", "feature", "february", "federal",
	"fee", "feisty", "felon", "female", "fence", "feral", "festival", "fetch", "fever", "few",
	"fiasco", "fiber", "fiction", "fidget", "field", "figure", "file", "final", "fire", "fiscal",
	"fit", "fix", "flag", "flee", "flight", "float", "fluid", "fly", "foam", "focus",
	"fodder", "fog", "foil", "fold", "fondue", "food", "force", "fossil", "found", "fox",
	"fragile", "frequent", "friend", "frog", "fruit", "fudge", "fuel", "fulcrum", "fumble", "fun",
	"furnished", "fuselage", "future", "gable", "gadget", "gaffe", "gain", "galaxy", "game", "gander",
	"gap", "garage", "gas", "gate", "gauge", "gaze", "gearbox", "gecko", "geek", "gelatin",
	"gemstone", "general", "geology", "geranium", "gesture", "geyser", "ghastly", "ghetto", "ghost", "giant",
	"gibberish", "giddy", "gift", "giggle", "gimmick", "ginger", "giraffe", "give", "gizzard", "glad",
	"glean", "glide", "globe", "glue", "gnarled", "gnome", "goat", "goblin", "goddess", "goggles",
	"gold", "gondola", "good", "gopher", "gorilla", "gospel", "gouge", "govern", "gown", "grab",
	"great", "grid", "grocery", "grunt", "guard", "guess", "guide", "gulag", "gumbo", "gun",
	"gurgle", "gusher", "gutter", "gym", "gypsum", "habit", "hacksaw", "haggard", "hair", "half",
	"hammer", "hand", "happy", "harbor", "hasty", "hat", "haughty", "have", "hawk", "hazard",
	"head", "hectare", "hedge", "heedless", "height", "hello", "hemline", "hen", "hero", "hexagon",
	"hibiscus", "hickory", "hidden", "hierarchy", "high", "hijack", "hill", "hint", "hip", "hire",
	"history", "hitch", "hive", "hoarse", "hobby", "hockey", "hogwash", "hoist", "hold", "home",
	"honey", "hood", "hope", "horn", "hospital", "hotel", "hour", "hover", "hub", "huddle",
	"huge", "human", "hundred", "hurdle", "husband", "hutch", "hybrid", "hydrant", "hyena", "hygiene",
	"hymn", "hyphen", "hysteria", "ice", "icicle", "icon", "idea", "idiom", "idle", "idyllic",
	"igloo", "ignore", "ill", "image", "imbalance", "imitate", "immense", "impact", "inbound", "inch",
	"index", "inert", "infant", "ingot", "inhale", "initial", "inject", "inkling", "inlet", "inmate",
	"inner", "input", "inquiry", "insane", "intact", "invest", "ionic", "irate", "iron", "irritant",
	"island", "isolate", "issue", "item", "itinerary", "ivory", "jacket", "jaguar", "jamboree", "jar",
	"jasmine", "javelin", "jawline", "jaybird", "jazz", "jealous", "jelly", "jeopardy", "jester", "jetty",
	"jewel", "jiffy", "jigsaw", "jingle", "jitters", "job", "jockey", "join", "joke", "jostle",
	"journey", "jovial", "joy", "jubilant", "judge", "juggle", "juice", "julep", "jump", "jungle",
	"jurist", "just", "juvenile", "kabob", "kaleidoscope", "kangaroo", "karaoke", "kayak", "keen", "kelp",
	"kennel", "kernel", "ketchup", "key", "khaki", "kick", "kid", "kiln", "kimono", "kind",
	"kiosk", "kipper", "kiss", "kit", "kiwi", "knapsack", "knee", "knife", "knock", "knuckle",
	"koala", "kosher", "krill", "label", "lacquer", "ladder", "lagoon", "lair", "lake", "lamp",
	"language", "laptop", "large", "lasagna", "later", "laugh", "lava", "law", "layer", "lazy",
	"leader", "lecture", "ledger", "leech", "left", "leg", "leisure", "lemon", "lend", "leopard",
	"leper", "lesson", "letter", "level", "liar", "liberty", "license", "lieutenant", "life", "light",
	"like", "lilac", "limb", "link", "lion", "liquid", "list", "little", "live", "lizard",
	"load", "lobster", "local", "lodge", "loftiness", "logic", "loiter", "lollipop", "lonely", "loop",
	"lopsided", "lore", "lottery", "loud", "love", "loyal", "lozenge", "lubricant", "lucky", "ludicrous",
	"luggage", "lukewarm", "lullaby", "lumber", "lunar", "lurch", "lushness", "luxury", "lyceum", "lyrics",
	"machine", "mad", "maestro", "magic", "mahogany", "maid", "major", "make", "malady", "mammal",
	"manage", "maple", "marble", "mask", "match", "maverick", "maximum", "mayhem", "maze", "meadow",
	"mechanic", "medal", "meerkat", "megaphone", "melody", "member", "mention", "mercy", "mesh", "metal",
	"mezzanine", "microbe", "middle", "mightily", "milk", "mimic", "mind", "miracle", "misery", "mitigate",
	"mix", "moat", "mobile", "mockery", "model", "mogul", "moisture", "molasses", "moment", "monitor",
	"moon", "mopey", "moral", "mosquito", "mother", "mountain", "move", "much", "mudslide", "muffin",
	"mule", "mumble", "mundane", "muppet", "muralist", "muscle", "mutual", "muzzle", "myopic", "myriad",
	"myself", "myth", "nacho", "nadir", "nagging", "naive", "name", "nanosecond", "napkin", "narrow",
	"nasty", "nation", "naughty", "navigate", "near", "nebula", "neck", "need", "nefarious", "negative",
	"neither", "nemesis", "neolithic", "nephew", "nerve", "nest", "net", "neutral", "never", "news",
	"next", "niblet", "nice", "niece", "night", "nimble", "ninepin", "nirvana", "nitrogen", "noble",
	"nocturnal", "nodule", "noise", "nominee", "nonchalant", "noodle", "normal", "nose", "notable", "nourish",
	"novel", "now", "nozzle", "nuance", "nubby", "nuclear", "nudge", "nugget", "nuisance", "number",
	"nuptial", "nurse", "nut", "nuzzle", "nymph", "oak", "oasis", "oatmeal", "obey", "obituary",
	"object", "oblige", "oboe", "obscure", "obtain", "obvious", "occur", "ocean", "october", "oddity",
	"odious", "odor", "odyssey", "off", "often", "ogre", "oil", "ointment", "okay", "okra",
	"old", "oleander", "olfactory", "olive", "olympic", "omit", "omnivore", "once", "one", "onion",
	"online", "onslaught", "onward", "oodles", "opaque", "open", "opinion", "opossum", "oppose", "option",
	"opulent", "orange", "orbit", "orchard", "order", "ore", "organ", "orient", "ornament", "orphan",
	"oscillate", "osmosis", "ostrich", "other", "otter", "outdoor", "oval", "oven", "owlet", "own",
	"oxcart", "oxidize", "oxygen", "oyster", "ozone", "pact", "paddle", "page", "pair", "palace",
	"pamphlet", "panda", "paper", "parade", "pass", "patch", "pause", "pave", "payment", "peace",
	"pebble", "peculiar", "pedal", "peekaboo", "pelican", "pen", "people", "pepper", "perfect", "pesky",
	"pet", "pewter", "phantom", "phone", "phrase", "physical", "piano", "picnic", "piece", "pig",
	"pill", "pimple", "pink", "pioneer", "pipe", "piranha", "pistol", "pitch", "pivotal", "pixelate",
	"pizza", "place", "please", "pliable", "plod", "pluck", "plywood", "pneumonia", "poach", "pocketbook",
	"podium", "poem", "point", "poker", "polar", "pompous", "pond", "pool", "popular", "portion",
	"position", "potato", "poultice", "poverty", "powder", "practice", "predict", "price", "problem", "prudent",
	"psalm", "pseudonym", "psychic", "public", "pudding", "puffin", "pull", "pumpkin", "punch", "pupil",
	"purchase", "push", "put", "puzzle", "pyramid", "quality", "question", "quick", "quote", "rabbit",
	"raccoon", "radar", "raffle", "ragged", "rail", "rakish", "rally", "ramp", "ranch", "rapid",
	"rare", "rascal", "rate", "raucous", "raven", "raw", "razor", "ready", "rebel", "recall",
	"reduce", "reefer", "reflect", "region", "reign", "reject", "relax", "remain", "render", "reopen",
	"repair", "require", "rescue", "retire", "reunion", "reveal", "reward", "rhetoric", "rhinestone", "rhombus",
	"rhythm", "rib", "rice", "ride", "rifle", "right", "ring", "riot", "ripple", "risk",
	"ritual", "rival", "road", "robot", "rocket", "rodeo", "rogue", "romance", "roof", "rose",
	"rotate", "rough", "rowdy", "royal", "rubber", "ruckus", "rude", "ruffian", "rug", "ruinous",
	"rule", "rumba", "run", "rupture", "rural", "rustic", "ruthless", "saboteur", "sachet", "sad",
	"safe", "sagacious", "sail", "salad", "same", "sand", "saphire", "sarcasm", "sashay", "satisfy",
	"sauce", "save", "sawdust", "say", "scale", "scene", "scheme", "science", "scorpion", "scrap",
	"scuba", "sea", "second", "sedan", "seed", "segment", "seismic", "select", "seminar", "senior",
	"sequence", "series", "session", "settle", "seven", "sewage", "shadow", "shed", "shield", "shock",
	"shrimp", "shuffle", "shy", "sibling", "sick", "side", "siege", "sifter", "sight", "silent",
	"similar", "since", "siren", "sister", "situate", "six", "size", "skate", "sketch", "ski",
	"skull", "skylight", "slab", "sleep", "slice", "slogan", "slush", "slyly", "small", "smile",
	"smoke", "smuggle", "snack", "sneaker", "sniff", "snow", "snuggle", "soap", "sobriety", "soccer",
	"soda", "soft", "sojourn", "solar", "someone", "song", "soon", "sophomore", "sorry", "soul",
	"sovereign", "space", "speak", "sphere", "spice", "split", "spoil", "spray", "spunky", "spy",
	"square", "stable", "steak", "stick", "stock", "strategy", "student", "style", "suave", "subject",
	"success", "sudden", "suede", "suffer", "sugar", "suit", "sulfur", "summer", "sun", "super",
	"sure", "suspect", "swallow", "swear", "swift", "sword", "syllable", "symbol", "synagogue", "syrup",
	"system", "table", "tackle", "tadpole", "taffeta", "tag", "tail", "talent", "tambourine", "tank",
	"tape", "target", "task", "tattoo", "taunt", "tavern", "tawny", "taxi", "teach", "technique",
	"tediously", "teepee", "tell", "temperament", "ten", "tepid", "term", "test", "tetherball", "text",
	"thank", "theme", "thing", "thought", "three", "thumb", "thwart", "thyroid", "ticket", "tide",
	"tiger", "tilt", "timber", "tiny", "tip", "tired", "tissue", "title", "toast", "tobacco",
	"today", "toe", "toffee", "together", "toilet", "token", "tolerable", "tomato", "tone", "tool",
	"top", "torch", "toss", "total", "tourist", "toward", "toxicity", "toy", "track", "treat",
	"trial", "trophy", "truck", "try", "tsunami", "tube", "tuckered", "tuition", "tulip", "tumble",
	"tuna", "turkey", "tusk", "tutelage", "twangy", "twelve", "twice", "two", "tycoon", "type",
	"tyranny", "udder", "ugly", "ulcer", "ultimatum", "umbrella", "umpire", "unable", "unbiased", "uncle",
	"under", "unearth", "unfair", "ungainly", "unhappy", "uniform", "unknown", "unlock", "unmask", "unnerve",
	"unpack", "unravel", "unscrew", "until", "unusual", "unveil", "unwieldy", "upbeat", "update", "upgrade",
	"uphold", "upkeep", "upon", "upper", "uproot", "upset", "uranium", "urban", "urchin", "urge",
	"usage", "use", "usher", "usual", "utensil", "utility", "utopia", "vacant", "vague", "valid",
	"vampire", "van", "vapor", "various", "vast", "vault", "vegetate", "vehicle", "veiled", "velvet",
	"vendor", "verb", "vessel", "veteran", "viable", "vibrant", "vicious", "video", "view", "vigilant",
	"village", "vintage", "violin", "viper", "virtual", "visa", "vital", "vivid", "vixen", "vocal",
	"vogue", "voice", "volcano", "voodoo", "voracious", "vote", "voucher", "vowel", "voyage", "vulgar",
	"wacky", "wafer", "wage", "wait", "walk", "want", "warfare", "wash", "water", "wave",
	"waxwork", "way", "wealth", "web", "wedding", "weekend", "weird", "welcome", "werewolf", "west",
	"wet", "whale", "wheat", "whip", "wholesale", "wickerwork", "wide", "wielder", "wife", "wigwam",
	"wild", "win", "wire", "wisdom", "witness", "wizardry", "wobbly", "woebegone", "wolf", "woman",
	"wonder", "wood", "word", "wrap", "wreck", "wrist", "wrong", "xenophobe", "xylophone", "yacht",
	"yahoo", "yard", "yawning", "year", "yellow", "yesteryear", "yielding", "yodel", "yogurt", "yonder",
	"you", "yuletide", "zebra", "zero", "zone", "zoo",
}
