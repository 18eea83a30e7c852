package catalog

import "time"

// Listings are re-published daily, so the posting date tracks process start.
var datePosted = time.Now().Format("2006-01-02")

var rawJobs = []JobRecord{
	{
		Slug:            "thuisbezorgd-takeaway-courier-netherlands",
		Title:           "Food Delivery",
		OrgName:         "Thuisbezorgd.nl",
		DescriptionHTML: "<p><strong>Are you tired of endless study sessions and sitting behind your laptop all day?</strong> This job is your perfect excuse to get outside, stay active, and earn solid money while exploring your city! Join <strong>Thuisbezorgd.nl</strong> as a Food Delivery Courier — hop on your bike, scooter, or car, and deliver happiness (and food) straight to hungry customers.</p><ul><li><strong>Flexible schedule</strong> — choose your own working hours</li><li><strong>Reliable income</strong> — hourly pay + tips + bonuses</li><li><strong>DUO-friendly</strong> — work enough hours and you can qualify for study financing</li><li><strong>Requirements</strong> — smartphone with data and your own bike, scooter, or car</li></ul><p>Ready to swap your desk for the open road? <strong>Join Thuisbezorgd.nl and start earning this week!</strong></p>",
		EmploymentType:  PartTime,
		BaseSalaryMin:   floatPtr(12),
		BaseSalaryMax:   floatPtr(15),
		Currency:        "EUR",
		PayUnit:         "HOUR",
		AddressLocality: "Groningen",
		Area:            "Citywide / Multiple cities",
		EnglishFriendly: true,
		DUO:             true,
		WorkHours:       "Flexible shifts, 6–30 h/week",
		DatePosted:      datePosted,
		ValidThrough:    "2025-12-31",
		Categories:      []Category{CategoryDelivery, CategoryFieldwork},
		Featured:        true,

		PerSaleAmountText: "14 euros per hour",
		LogoURL:           "/logos/thuisbezorgd.png",
		LogoAlt:           "Thuisbezorgd.nl logo",
		ExternalURL:       "https://www.thuisbezorgd.nl/en/courier?city=blank&raf_id=478ba2228ffa17c8e591f221e022ffa2",
	},
	{
		Slug:            "pepperminds-door-to-door-sales-groningen",
		Title:           "Door-to-Door Sales",
		OrgName:         "Pepperminds",
		DescriptionHTML: "<p><strong>Earn €150 per shift</strong> as part of Pepperminds’ door-to-door team in Groningen. We mix the <em>personal touch in a digital era</em> with energy, coaching, and paid training so you can grow fast and earn even faster.</p><ul><li><strong>Dutch is not required</strong>, and you can even receive DUO if you work enough hours</li><li><strong>The better you are, the more you earn</strong> — performance bonuses reach up to €500 a day</li><li><strong>Learn real sales</strong> alongside students from all kinds of backgrounds</li></ul><p>Ready to test your limits, make friends, and earn like a pro? <strong>Join the crew and start this week!</strong></p>",
		EmploymentType:  PartTime,
		BaseSalaryMin:   floatPtr(12),
		BaseSalaryMax:   floatPtr(20),
		Currency:        "EUR",
		PayUnit:         "HOUR",
		AddressLocality: "Groningen",
		Area:            "Various districts",
		EnglishFriendly: true,
		DUO:             true,
		WorkHours:       "10–20 h/week",
		DatePosted:      datePosted,
		ValidThrough:    "2025-12-31",
		Categories:      []Category{CategorySales, CategoryFieldwork},
		Featured:        true,

		// Commission does not reduce to one number, so keep the text label.
		PerSaleAmountText: "150 еuros per shift",
		LogoURL:           "/logos/pepperminds.jpeg",
		LogoAlt:           "Pepperminds logo",
		ExternalURL:       "https://www.pepperminds.nl/makeithappen/?mkt=LZ&utm_source=viavia&utm_medium=crewapp&utm_campaign=makeithappen",
	},
	{
		Slug:            "uber-eats-courier-groningen",
		Title:           "Uber Eats Courier",
		OrgName:         "Uber",
		DescriptionHTML: "<p><strong>Earn on your own schedule</strong> delivering with the Uber app in Groningen. Be your own boss, choose when you work, and track your earnings in real time.</p><p><strong>Limited-time promo:</strong> receive an extra €750 after you sign up and complete 50 trips within 90 days. *Eligibility applies; see additional terms on Uber’s site.</p><ul><li><strong>Flexible hours</strong> — ride when it suits you</li><li><strong>Fast onboarding</strong> — start delivering once you’re approved</li><li><strong>Multiple modes</strong> — deliver by bike, scooter, or car</li></ul>",
		EmploymentType:  PartTime,
		BaseSalaryMin:   floatPtr(12),
		BaseSalaryMax:   floatPtr(16),
		Currency:        "EUR",
		PayUnit:         "HOUR",
		AddressLocality: "Groningen",
		Area:            "Citywide",
		EnglishFriendly: true,
		WorkHours:       "Flexible",
		DatePosted:      datePosted,
		ValidThrough:    "2025-12-31",
		Categories:      []Category{CategoryDelivery},
		Featured:        true,

		PerSaleAmountText: "€750 sign-up reward after 50 trips (within 90 days; terms apply)",
		LogoURL:           "/logos/uber.png",
		LogoAlt:           "Uber logo",
		ExternalURL:       "https://www.uber.com/nl/en/deliver/",
	},
	{
		Slug:            "domakin-viewing-agent-groningen",
		Title:           "Domakin Viewing Agent (Remote Viewings)",
		OrgName:         "Domakin",
		DescriptionHTML: "<p>Visit properties on behalf of students, stream live video, and complete a short checklist (condition, noise, registration, landlord details). Flexible shifts; training provided.</p><ul><li>Equipment: smartphone with data</li><li>Each viewing ~30–45 minutes</li><li>Bonus for fast response times</li></ul>",
		EmploymentType:  PartTime,
		BaseSalaryMin:   floatPtr(15),
		BaseSalaryMax:   floatPtr(22),
		Currency:        "EUR",
		PayUnit:         "HOUR",
		AddressLocality: "Groningen",
		Area:            "Citywide",
		EnglishFriendly: true,
		WorkHours:       "4–16 h/week, flexible",
		DatePosted:      datePosted,
		ValidThrough:    "2025-12-31",
		Categories:      []Category{CategoryFieldwork, CategoryEvents},

		PerGigAmount: floatPtr(20),
		LogoURL:      "/logos/domakin.png",
		LogoAlt:      "Domakin logo",
		ExternalURL:  "https://www.domakin.nl/careers",
	},
	{
		Slug:            "domakin-room-finder-groningen",
		Title:           "Room Finder",
		OrgName:         "Domakin",
		DescriptionHTML: "<p><strong>Do you want to help students who are struggling to find a place to live?</strong> Join the Domakin team and help international students settle in the Netherlands by sourcing rooms and apartments that allow registration, verifying details with landlords, and uploading them to our platform. Every successful match helps another student find a home — and earns you <strong>€200 per sale!</strong></p><ul><li><strong>Citywide work</strong> — explore your city and connect with landlords</li><li><strong>English-friendly</strong> — perfect for international students</li><li><strong>Tasks</strong> — outbound calls &amp; messages, quality checks (registration, price, location)</li></ul><p><strong>How to apply:</strong> send a message through the contact form on our website with your email and we’ll reach out to schedule an interview.</p>",
		EmploymentType:  PartTime,
		BaseSalaryMin:   floatPtr(12),
		BaseSalaryMax:   floatPtr(18),
		Currency:        "EUR",
		PayUnit:         "HOUR",
		AddressLocality: "Groningen",
		Area:            "Citywide",
		EnglishFriendly: true,
		WorkHours:       "6–20 h/week, flexible",
		DatePosted:      datePosted,
		ValidThrough:    "2025-12-31",
		Categories:      []Category{CategorySales},
		Featured:        true,

		PerSaleAmount: floatPtr(200),
		LogoURL:       "/logos/domakin.png",
		LogoAlt:       "Domakin logo",
		ExternalURL:   "https://www.domakin.nl/services/add-listing",
	},
	{
		Slug:            "rentswap-room-finder-groningen",
		Title:           "Room Finder",
		OrgName:         "RentSwap",
		DescriptionHTML: "<p><strong>Do you already know someone who’s moving out — or maybe you’re leaving your own place soon?</strong> Join <strong>RentSwap</strong>, a Groningen-based startup helping students and young professionals find rooms before they even hit the market.</p><p>As a Room Finder you’ll work directly with leaving tenants to identify upcoming rooms, organize one-candidate viewings, and make sure everything is verified — from registration to rent and location. Each successful handover earns you <strong>€200</strong>.</p><ul><li><strong>Flexible hours</strong> — plan your work around your studies</li><li><strong>English-friendly</strong> — ideal for international students and expats</li><li><strong>Training included</strong> — scripts, communication, and verification skills</li></ul>",
		EmploymentType:  PartTime,
		BaseSalaryMin:   floatPtr(12),
		BaseSalaryMax:   floatPtr(18),
		Currency:        "EUR",
		PayUnit:         "HOUR",
		AddressLocality: "Groningen",
		Area:            "Citywide",
		EnglishFriendly: true,
		WorkHours:       "8–16 h/week",
		DatePosted:      datePosted,
		ValidThrough:    "2025-12-31",
		Categories:      []Category{CategorySales},

		PerSaleAmount: floatPtr(200),
		LogoURL:       "/logos/rentswap.png",
		LogoAlt:       "RentSwap logo",
		ExternalURL:   "https://www.rentswap.nl/",
	},
	{
		Slug:            "hellofresh-delivery-driver-groningen",
		Title:           "HelloFresh Delivery Driver (Groningen)",
		OrgName:         "HelloFresh",
		DescriptionHTML: "<p>Deliver meal boxes in Groningen; fixed shifts, paid mileage; uniform & equipment provided.</p>",
		EmploymentType:  PartTime,
		BaseSalaryMin:   floatPtr(14.5),
		BaseSalaryMax:   floatPtr(15.5),
		Currency:        "EUR",
		PayUnit:         "HOUR",
		AddressLocality: "Groningen",
		WorkHours:       "Fixed shifts",
		DatePosted:      datePosted,
		ValidThrough:    "2025-12-31",
		Categories:      []Category{CategoryDelivery},
		ExternalURL:     "https://www.studentjob.nl/vacatures/2964353-hello-fresh-bezorger-groningen",
	},
	{
		Slug:            "postnl-night-postsorteerder-groningen",
		Title:           "PostNL Night Postsorteerder (Groningen)",
		OrgName:         "PostNL",
		DescriptionHTML: "<p>Night mail sorting in Groningen; shift allowances increase evening/night pay.</p>",
		EmploymentType:  PartTime,
		BaseSalaryMin:   floatPtr(13.68),
		BaseSalaryMax:   floatPtr(19.15),
		Currency:        "EUR",
		PayUnit:         "HOUR",
		AddressLocality: "Groningen",
		WorkHours:       "Evenings/Nights",
		DatePosted:      datePosted,
		ValidThrough:    "2025-12-31",
		Categories:      []Category{CategoryFieldwork},
		ExternalURL:     "https://www.studentjob.nl/vacatures/3399225-parttime-postsorteerder-in-de-avond-bij-postnl-in-groningen",
	},
	{
		Slug:            "lidl-store-assistant-zuidplein",
		Title:           "Lidl Store Assistant – Zuidplein",
		OrgName:         "Lidl",
		DescriptionHTML: "<p>Supermarket retail shifts (2–12 hrs/week); flexible scheduling; age-based all-in pay.</p>",
		EmploymentType:  PartTime,
		BaseSalaryMin:   floatPtr(14.94),
		BaseSalaryMax:   floatPtr(20),
		Currency:        "EUR",
		PayUnit:         "HOUR",
		AddressLocality: "Groningen",
		Area:            "Zuidplein",
		WorkHours:       "2–12 h/week, flexible",
		DatePosted:      datePosted,
		ValidThrough:    "2025-12-31",
		Categories:      []Category{CategoryRetail},
		ExternalURL:     "https://nl.indeed.com/q-vakkenvuller-l-groningen-vacatures.html",
	},
	{
		Slug:            "catering-medewerker-hogeschool-groningen-spot-on",
		Title:           "Catering Medewerker – Hogeschool Groningen (Spot On)",
		OrgName:         "Spot On",
		DescriptionHTML: "<p>On-campus catering service; daytime Mon–Fri; flexible hours.</p>",
		EmploymentType:  PartTime,
		BaseSalaryMin:   floatPtr(14.5),
		BaseSalaryMax:   floatPtr(16.5),
		Currency:        "EUR",
		PayUnit:         "HOUR",
		AddressLocality: "Groningen",
		WorkHours:       "Daytime (Mon–Fri)",
		DatePosted:      datePosted,
		ValidThrough:    "2025-12-31",
		Categories:      []Category{CategoryHospitality},
		ExternalURL:     "https://nl.indeed.com/q-catering-medewerker-bij-l-groningen-vacatures.html",
	},
}
