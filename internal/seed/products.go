package seed

import "bakery_storefront/internal/models"

var products = []models.Product{
	{
		ID:               1,
		Name:             "Chocolate Delight Cake",
		Price:            499,
		Category:         string(models.CategoryCakes),
		Description:      "Our bestselling chocolate cake is a true delight for chocolate lovers. Made with premium dark chocolate and layered with rich chocolate ganache, this cake is perfect for any celebration or special occasion. Each bite delivers an intense chocolate flavor that melts in your mouth.",
		ShortDescription: "Rich chocolate cake with ganache frosting",
		Images: []string{
			"https://images.unsplash.com/photo-1578985545062-69928b1d9587?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1588195538326-c5b1e9f80a1b?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=100",
			"https://images.unsplash.com/photo-1565958011703-44f9829ba187?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=100",
			"https://images.unsplash.com/photo-1606890658317-7d14490b76fd?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=100",
		},
		Rating:   4.5,
		Featured: true,
		Sizes: []models.SizeVariant{
			{Name: "Small (500g)", Price: 399},
			{Name: "Medium (1kg)", Price: 499},
			{Name: "Large (2kg)", Price: 899},
		},
		Reviews: []models.Review{
			{
				ID:      1,
				Name:    "Priya Sharma",
				Rating:  5,
				Comment: "This cake is absolutely incredible! The chocolate is rich without being overpowering, and the texture is perfect. I ordered it for my husband's birthday and everyone loved it.",
				Date:    "2 days ago",
				Avatar:  "https://images.unsplash.com/photo-1494790108377-be9c29b29330?ixlib=rb-4.0.3&auto=format&fit=crop&w=100&h=100",
			},
			{
				ID:      2,
				Name:    "Rahul Patel",
				Rating:  4,
				Comment: "Great cake overall, though I found it a bit too sweet for my taste. The delivery was prompt and the cake looked exactly like the pictures. Would order again but maybe try a different flavor.",
				Date:    "1 week ago",
				Avatar:  "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=100&h=100",
			},
			{
				ID:      3,
				Name:    "Sneha Gupta",
				Rating:  5,
				Comment: "Absolutely divine! The cake was moist, rich and had the perfect balance of sweetness. Will definitely order again!",
				Date:    "2 weeks ago",
				Avatar:  "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?ixlib=rb-4.0.3&auto=format&fit=crop&w=100&h=100",
			},
		},
	},
	{
		ID:               2,
		Name:             "Butter Croissants",
		Price:            129,
		Category:         string(models.CategoryPastries),
		Description:      "Indulge in our authentic French butter croissants, made with the finest imported butter and baked to golden perfection. Our artisanal process involves 24 hours of careful preparation to create those signature flaky layers that shatter delicately with each bite. Perfect for breakfast or as an anytime treat.",
		ShortDescription: "Classic buttery French croissants",
		Images: []string{
			"https://images.unsplash.com/photo-1484723091739-30a097e8f929?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1623334044303-241021148842?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1620146344904-097a0909ec63?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
		},
		Rating:   4.0,
		Featured: true,
		Sizes: []models.SizeVariant{
			{Name: "Pack of 2", Price: 129},
			{Name: "Pack of 4", Price: 239},
			{Name: "Pack of 6", Price: 349},
		},
		Reviews: []models.Review{
			{
				ID:      4,
				Name:    "Anjali Mehta",
				Rating:  4,
				Comment: "These croissants are absolutely delicious! Flaky, buttery, and perfectly baked. Could be slightly larger for the price, but the quality is top notch.",
				Date:    "3 days ago",
			},
			{
				ID:      5,
				Name:    "Vikram Singh",
				Rating:  5,
				Comment: "The best croissants I've had outside of France! Truly authentic and reminds me of the bakeries in Paris. Worth every rupee!",
				Date:    "1 week ago",
			},
		},
	},
	{
		ID:               3,
		Name:             "Artisan Sourdough Bread",
		Price:            199,
		Category:         string(models.CategoryBreads),
		Description:      "Our signature sourdough bread is crafted with a natural levain that's been carefully nurtured for over five years. Each loaf undergoes a 36-hour fermentation process, developing complex flavors and that perfect tangy taste. The crust is crackling and robust, while the interior crumb remains tender and airy with beautiful irregular holes. This bread is perfect for sandwiches, toast, or simply enjoyed with good butter.",
		ShortDescription: "Traditional sourdough with perfect crust",
		Images: []string{
			"https://images.unsplash.com/photo-1509440159596-0249088772ff?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1594994564322-d1c8ef0a0911?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1549931319-a545dcf3bc7b?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
		},
		Rating:   5.0,
		Featured: true,
		Sizes: []models.SizeVariant{
			{Name: "Small (500g)", Price: 199},
			{Name: "Large (1kg)", Price: 349},
		},
		Reviews: []models.Review{
			{
				ID:      6,
				Name:    "Arjun Kumar",
				Rating:  5,
				Comment: "This sourdough bread is exceptional! The crust is perfect and the flavor is complex and satisfying. It's become a weekly staple in our home.",
				Date:    "4 days ago",
			},
			{
				ID:      7,
				Name:    "Meera Reddy",
				Rating:  5,
				Comment: "Absolutely the best sourdough I've found in the city. Perfect texture and that slight tanginess that makes sourdough special.",
				Date:    "2 weeks ago",
			},
		},
	},
	{
		ID:               4,
		Name:             "French Macarons Assortment",
		Price:            349,
		Category:         string(models.CategoryDesserts),
		Description:      "Our elegant French macarons are made using traditional techniques and the finest ingredients. Each delicate almond meringue shell has the perfect crisp exterior that gives way to a chewy interior, sandwiching a flavorful filling. This assortment includes classic flavors like vanilla, chocolate, pistachio, rose, lemon, and coffee. These colorful treats make perfect gifts or a special indulgence for yourself.",
		ShortDescription: "Assorted flavors of delicate French macarons",
		Images: []string{
			"https://images.unsplash.com/photo-1569864358642-9d1684040f43?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1558326567-98ae2405596b?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1558301211-0d8c8ddee6ec?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
		},
		Rating:   4.7,
		Featured: true,
		Sizes: []models.SizeVariant{
			{Name: "Box of 6", Price: 349},
			{Name: "Box of 12", Price: 649},
			{Name: "Box of 24", Price: 1199},
		},
		Reviews: []models.Review{
			{
				ID:      8,
				Name:    "Pooja Iyer",
				Rating:  5,
				Comment: "These macarons are simply divine! The shells are delicate and perfectly crisp, and the fillings are rich and flavorful. My favorites are the pistachio and rose flavors.",
				Date:    "1 week ago",
			},
			{
				ID:      9,
				Name:    "Sanjay Mehta",
				Rating:  4,
				Comment: "Excellent quality macarons that taste as good as they look. They make great gifts too - my friends were impressed!",
				Date:    "3 weeks ago",
			},
		},
	},
	{
		ID:               5,
		Name:             "Cinnamon Swirl Brioche",
		Price:            279,
		Category:         string(models.CategoryBreads),
		Description:      "Our Cinnamon Swirl Brioche combines the buttery richness of traditional French brioche with warm swirls of cinnamon sugar throughout. This decadent bread is made with premium European butter and free-range eggs, creating an incredibly tender and fluffy texture. Each loaf is hand-rolled with our signature cinnamon filling and baked to golden perfection. Perfect for an indulgent breakfast, especially when toasted and topped with a light smear of cream cheese.",
		ShortDescription: "Buttery brioche with cinnamon swirls",
		Images: []string{
			"https://images.unsplash.com/photo-1620921568790-c1cf8984624c?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1600398138360-766a0e0a4c0f?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1600398138252-c5f7f2fafd25?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
		},
		Rating:   4.8,
		Featured: false,
		Reviews: []models.Review{
			{
				ID:      10,
				Name:    "Neha Sharma",
				Rating:  5,
				Comment: "This brioche is heavenly! The cinnamon flavor is perfectly balanced and the bread itself is so soft and buttery. Makes the best french toast!",
				Date:    "5 days ago",
			},
			{
				ID:      11,
				Name:    "Raj Kapoor",
				Rating:  4,
				Comment: "Delicious brioche with a wonderful aroma. It's a bit pricey but worth it for a special breakfast treat.",
				Date:    "2 weeks ago",
			},
		},
	},
	{
		ID:               6,
		Name:             "Blueberry Cheesecake",
		Price:            549,
		Category:         string(models.CategoryCakes),
		Description:      "Our Blueberry Cheesecake features a creamy, smooth filling made with premium cream cheese, set on a buttery graham cracker crust, and topped with a luscious homemade blueberry compote. Each cheesecake is slowly baked and then chilled overnight to develop the perfect texture and flavor. The natural sweetness of the blueberries complements the slight tanginess of the cheesecake, creating a balanced and memorable dessert that's perfect for any occasion.",
		ShortDescription: "Creamy cheesecake with blueberry topping",
		Images: []string{
			"https://images.unsplash.com/photo-1565958011703-44f9829ba187?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1567171466295-4afa63d45416?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1571115177098-24ec42ed204d?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
		},
		Rating:   4.6,
		Featured: false,
		Sizes: []models.SizeVariant{
			{Name: "6 inch (serves 6-8)", Price: 549},
			{Name: "8 inch (serves 10-12)", Price: 849},
		},
		Reviews: []models.Review{
			{
				ID:      12,
				Name:    "Anita Desai",
				Rating:  5,
				Comment: "This cheesecake is absolutely divine! The texture is perfect - creamy but light, and the blueberry topping adds just the right amount of sweetness.",
				Date:    "1 week ago",
			},
			{
				ID:      13,
				Name:    "Karan Malhotra",
				Rating:  4,
				Comment: "Ordered this for my mother's birthday and it was a hit! The blueberry topping is made with real berries and not overly sweet. Will order again.",
				Date:    "3 weeks ago",
			},
		},
	},
	{
		ID:               7,
		Name:             "Almond Chocolate Cookies",
		Price:            249,
		Category:         string(models.CategoryDesserts),
		Description:      "Our Almond Chocolate Cookies are a perfect balance of chewy and crisp, featuring premium dark chocolate chunks and roasted almond slivers. Made with European-style butter and a touch of sea salt to enhance the flavors, these cookies develop a wonderful depth and complexity. Each cookie is generous in size and baked to order to ensure maximum freshness. The slight nuttiness from the almonds perfectly complements the rich chocolate, creating an irresistible treat for cookie enthusiasts.",
		ShortDescription: "Chewy cookies with dark chocolate and almonds",
		Images: []string{
			"https://images.unsplash.com/photo-1606890658317-7d14490b76fd?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1558961363-fa8fdf82db35?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1590080874088-eec64895b423?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
		},
		Rating:   4.4,
		Featured: false,
		Sizes: []models.SizeVariant{
			{Name: "Pack of 6", Price: 249},
			{Name: "Pack of 12", Price: 459},
		},
		Reviews: []models.Review{
			{
				ID:      14,
				Name:    "Divya Singh",
				Rating:  5,
				Comment: "These cookies are addictive! The perfect balance of chocolate and almond, not too sweet, and with a wonderful texture. My new favorite!",
				Date:    "4 days ago",
			},
			{
				ID:      15,
				Name:    "Anil Kumar",
				Rating:  4,
				Comment: "Very good cookies with excellent ingredients. I liked the generous size and the fact that they stay chewy even after a few days.",
				Date:    "2 weeks ago",
			},
		},
	},
	{
		ID:               8,
		Name:             "Mango Tart",
		Price:            399,
		Category:         string(models.CategorySeasonal),
		Description:      "Our seasonal Mango Tart celebrates the king of fruits in its most glorious form. A buttery, crisp tart shell provides the perfect base for a light vanilla custard, topped with perfectly ripe Alphonso mangoes arranged in a beautiful pattern. Each tart is glazed with a hint of lime for a subtle contrast to the sweetness of the mangoes. This dessert is only available during mango season to ensure we use the finest, freshest fruits at their peak ripeness.",
		ShortDescription: "Seasonal tart with fresh Alphonso mangoes",
		Images: []string{
			"https://images.unsplash.com/photo-1578985545062-69928b1d9587?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1622621746668-59fb299bc4d7?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1462043103994-3474e6b6c3a7?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
		},
		Rating:   4.9,
		Featured: true,
		Sizes: []models.SizeVariant{
			{Name: "4 inch (individual)", Price: 399},
			{Name: "8 inch (serves 6-8)", Price: 899},
		},
		Reviews: []models.Review{
			{
				ID:      16,
				Name:    "Sunita Patel",
				Rating:  5,
				Comment: "This mango tart is summer in a dessert! The mangoes were perfectly ripe and sweet, and the tart shell was buttery and crisp. A true seasonal delight!",
				Date:    "2 days ago",
			},
			{
				ID:      17,
				Name:    "Vivek Nair",
				Rating:  5,
				Comment: "Absolutely phenomenal! As a mango lover, this tart exceeded all my expectations. The custard was light and not too sweet, letting the mangoes shine.",
				Date:    "1 week ago",
			},
		},
	},
	{
		ID:               9,
		Name:             "Whole Wheat Multigrain Loaf",
		Price:            179,
		Category:         string(models.CategoryBreads),
		Description:      "Our hearty Whole Wheat Multigrain Loaf is crafted with nutrition and flavor in mind. Made with 100% whole wheat flour and enriched with a blend of seven nutritious grains including flax, oats, sunflower seeds, and pumpkin seeds, this bread provides excellent fiber and protein. Each loaf undergoes a slow fermentation process that enhances digestibility and develops a rich, complex flavor. The crust is rustic and substantial, while the interior crumb remains moist and tender. Perfect for wholesome sandwiches or toasted with your favorite toppings.",
		ShortDescription: "Nutritious whole wheat bread with seven grains",
		Images: []string{
			"https://images.unsplash.com/photo-1598373182133-52452f7691ef?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1565610222536-ef125c59da2e?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1590368746679-a403c347a5b8?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
		},
		Rating:   4.7,
		Featured: false,
		Sizes: []models.SizeVariant{
			{Name: "Standard (700g)", Price: 179},
		},
		Reviews: []models.Review{
			{
				ID:      18,
				Name:    "Rohan Joshi",
				Rating:  5,
				Comment: "This is now my go-to bread for everyday use. It's substantial and nutritious without being heavy, and stays fresh for several days. Great with soups!",
				Date:    "6 days ago",
			},
			{
				ID:      19,
				Name:    "Lakshmi Raman",
				Rating:  4,
				Comment: "A very good wholesome bread. I appreciate that it's not overly dense like some whole grain breads can be. Perfect for a healthy breakfast.",
				Date:    "2 weeks ago",
			},
		},
	},
	{
		ID:               10,
		Name:             "Red Velvet Cupcakes",
		Price:            299,
		Category:         string(models.CategoryCakes),
		Description:      "Our Red Velvet Cupcakes are a modern classic, featuring a subtle cocoa flavor, vibrant red color, and velvety soft texture. Each cupcake is topped with a generous swirl of our signature cream cheese frosting that provides the perfect tangy complement to the lightly sweet cake. Made with natural food coloring and quality ingredients, these cupcakes have a sophisticated flavor that appeals to adults while maintaining the fun, festive appearance that everyone loves. Perfect for celebrations or as an elegant treat any day of the week.",
		ShortDescription: "Classic red cupcakes with cream cheese frosting",
		Images: []string{
			"https://images.unsplash.com/photo-1588195538326-c5b1e9f80a1b?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1563729784474-d77dbb933a9e?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1599785209707-a456fc1337bb?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
		},
		Rating:   4.5,
		Featured: false,
		Sizes: []models.SizeVariant{
			{Name: "Box of 4", Price: 299},
			{Name: "Box of 6", Price: 399},
			{Name: "Box of 12", Price: 749},
		},
		Reviews: []models.Review{
			{
				ID:      20,
				Name:    "Maya Verma",
				Rating:  5,
				Comment: "These are the best red velvet cupcakes I've ever had! The texture is so light and tender, and the cream cheese frosting is perfectly balanced - not too sweet.",
				Date:    "3 days ago",
			},
			{
				ID:      21,
				Name:    "Kabir Shah",
				Rating:  4,
				Comment: "Ordered these for a birthday and they were a hit! Very moist and flavorful. The frosting is exceptional. Would definitely order again.",
				Date:    "1 week ago",
			},
		},
	},
	{
		ID:               11,
		Name:             "Almond Croissant",
		Price:            159,
		Category:         string(models.CategoryPastries),
		Description:      "Our Almond Croissant elevates the traditional French pastry with a decadent almond filling and topping. We begin with our classic butter croissant, slice it horizontally, and fill it with a house-made almond cream flavored with a hint of rum. The croissant is then topped with more almond cream, sliced almonds, and baked again until the filling is set and the almonds are toasted to golden perfection. A light dusting of powdered sugar completes this indulgent pastry that pairs perfectly with your morning coffee or afternoon tea.",
		ShortDescription: "Buttery croissant filled with almond cream",
		Images: []string{
			"https://images.unsplash.com/photo-1592985684811-6c0f98adb014?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1623334044303-241021148842?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1484723091739-30a097e8f929?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
		},
		Rating:   4.8,
		Featured: false,
		Sizes: []models.SizeVariant{
			{Name: "Single", Price: 159},
			{Name: "Pack of 2", Price: 299},
			{Name: "Pack of 4", Price: 569},
		},
		Reviews: []models.Review{
			{
				ID:      22,
				Name:    "Sophie Thomas",
				Rating:  5,
				Comment: "These almond croissants are a slice of Paris in Mumbai! The perfect balance of buttery, flaky pastry and rich almond filling. Worth every calorie!",
				Date:    "5 days ago",
			},
			{
				ID:      23,
				Name:    "Aryan Menon",
				Rating:  5,
				Comment: "Absolutely heavenly! The almond flavor is pronounced without being overwhelming, and the texture contrast between the crisp exterior and soft filling is perfect.",
				Date:    "2 weeks ago",
			},
		},
	},
	{
		ID:               12,
		Name:             "Tiramisu Cake",
		Price:            599,
		Category:         string(models.CategoryCakes),
		Description:      "Our Tiramisu Cake reimagines the beloved Italian dessert in cake form. Layers of light vanilla sponge are soaked in espresso and layered with a mascarpone cream that achieves the perfect balance between richness and lightness. The cake is finished with a dusting of premium cocoa powder and decorated with chocolate shavings. Each bite delivers the classic tiramisu experience - the bitter notes of coffee and cocoa perfectly complementing the sweet, creamy mascarpone. This elegant dessert is perfect for coffee lovers and sophisticated palates.",
		ShortDescription: "Italian-inspired cake with coffee and mascarpone",
		Images: []string{
			"https://images.unsplash.com/photo-1578985545062-69928b1d9587?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1618426703623-c1b335803e07?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1632206217663-8e15e231bd60?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
		},
		Rating:   4.7,
		Featured: false,
		Sizes: []models.SizeVariant{
			{Name: "6 inch (serves 6-8)", Price: 599},
			{Name: "8 inch (serves 10-12)", Price: 899},
		},
		Reviews: []models.Review{
			{
				ID:      24,
				Name:    "Natasha Khan",
				Rating:  5,
				Comment: "This tiramisu cake was the highlight of our dinner party! The coffee flavor is prominent but not overwhelming, and the mascarpone cream is so light and airy. Exceptional!",
				Date:    "1 week ago",
			},
			{
				ID:      25,
				Name:    "Vishal Jain",
				Rating:  4,
				Comment: "A very good interpretation of tiramisu in cake form. The layers are well-defined and the flavors authentic. Would have liked a slightly stronger coffee flavor, but still excellent.",
				Date:    "3 weeks ago",
			},
		},
	},
	{
		ID:               13,
		Name:             "Chocolate Chip Cookies",
		Price:            229,
		Category:         string(models.CategoryDesserts),
		Description:      "Our Chocolate Chip Cookies are a perfect balance of crisp edges and chewy centers, packed with premium chocolate chunks that create pockets of melted goodness in every bite. We use a blend of brown and white sugars for depth of flavor, and a touch of sea salt to enhance the chocolate and create a more complex taste profile. Each cookie is generously sized and baked to order, ensuring you receive them at their absolute best. A classic treat elevated with quality ingredients and expert technique.",
		ShortDescription: "Classic cookies with premium chocolate chunks",
		Images: []string{
			"https://images.unsplash.com/photo-1606890658317-7d14490b76fd?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1618923850107-d1a234d7a73a?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1590080876179-aac08da5b70d?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
		},
		Rating:   4.6,
		Featured: false,
		Sizes: []models.SizeVariant{
			{Name: "Pack of 6", Price: 229},
			{Name: "Pack of 12", Price: 429},
		},
		Reviews: []models.Review{
			{
				ID:      26,
				Name:    "Amit Patel",
				Rating:  5,
				Comment: "These cookies are perfect! Crisp on the outside, soft and chewy in the middle, with generous chocolate chunks. They taste homemade in the best possible way.",
				Date:    "4 days ago",
			},
			{
				ID:      27,
				Name:    "Riya Sharma",
				Rating:  4,
				Comment: "Very good chocolate chip cookies that satisfy that classic cookie craving. I appreciate that they're not too sweet and have a hint of salt to balance the chocolate.",
				Date:    "2 weeks ago",
			},
		},
	},
	{
		ID:               14,
		Name:             "Garlic Herb Focaccia",
		Price:            249,
		Category:         string(models.CategoryBreads),
		Description:      "Our Garlic Herb Focaccia is a fragrant Italian-style flatbread that's both rustic and refined. The dough undergoes a long, slow fermentation that develops exceptional flavor and creates the characteristic airy texture with large, irregular holes. Before baking, we generously drizzle the dough with extra virgin olive oil and press in dimples that capture the aromatic mixture of fresh garlic, rosemary, thyme, and sea salt. The result is a bread with a crisp exterior, tender interior, and an intoxicating aroma that fills the room when warmed. Perfect as an accompaniment to meals, for sandwiches, or simply dipped in quality olive oil.",
		ShortDescription: "Italian flatbread with garlic and fresh herbs",
		Images: []string{
			"https://images.unsplash.com/photo-1509440159596-0249088772ff?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1578985545062-69928b1d9587?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1565958011703-44f9829ba187?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
		},
		Rating:   4.8,
		Featured: false,
		Sizes: []models.SizeVariant{
			{Name: "Half Slab", Price: 249},
			{Name: "Full Slab", Price: 429},
		},
		Reviews: []models.Review{
			{
				ID:      28,
				Name:    "Sonali Gupta",
				Rating:  5,
				Comment: "This focaccia is out of this world! The herbs are fresh and fragrant, and the texture is exactly what focaccia should be - crisp outside and soft inside. Makes any meal special!",
				Date:    "3 days ago",
			},
			{
				ID:      29,
				Name:    "Dev Patil",
				Rating:  5,
				Comment: "Absolutely delicious focaccia that's clearly made with care. The garlic and herb topping is generous and flavorful. Great for serving with soups or making sandwiches.",
				Date:    "1 week ago",
			},
		},
	},
	{
		ID:               16,
		Name:             "Pineapple Upside-Down Cake",
		Price:            449,
		Category:         string(models.CategorySeasonal),
		Description:      "Our Pineapple Upside-Down Cake is a nostalgic treat with a gourmet twist. We start with a caramelized base of brown sugar and butter, topped with perfectly arranged pineapple rings and maraschino cherries. Over this, we pour a vanilla-scented butter cake batter enriched with a touch of rum. After baking, the cake is inverted to reveal the stunning caramelized fruit design on top. The contrast between the sticky, caramelized fruit and the light, fluffy cake creates a dessert that's both comforting and sophisticated. Available seasonally when pineapples are at their sweetest.",
		ShortDescription: "Classic cake with caramelized pineapple topping",
		Images: []string{
			"https://images.unsplash.com/photo-1565958011703-44f9829ba187?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1570476922354-81227cdbb76c?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
			"https://images.unsplash.com/photo-1551879400-111a9087cd86?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=350",
		},
		Rating:   4.6,
		Featured: false,
		Sizes: []models.SizeVariant{
			{Name: "8 inch (serves 8-10)", Price: 449},
		},
		Reviews: []models.Review{
			{
				ID:      32,
				Name:    "Anjali Kapoor",
				Rating:  5,
				Comment: "This cake is a tropical dream! The caramelized pineapple topping is perfectly balanced - not too sweet, with a hint of tanginess. The cake itself is incredibly moist and tender.",
				Date:    "6 days ago",
			},
			{
				ID:      33,
				Name:    "Vikrant Mehta",
				Rating:  4,
				Comment: "A very good rendition of a classic cake. The hint of rum in the batter adds a sophisticated touch, and the presentation is beautiful. Would order again!",
				Date:    "2 weeks ago",
			},
		},
	},
}
