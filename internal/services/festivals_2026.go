package services

import "utsav/internal/models"

// festivals2026 is the predefined Hindu festival and vrat calendar for 2026.
var festivals2026 = []models.FestivalEvent{
	// January
	{ID: "1", Title: "Pausha Putrada Ekadashi", Date: "2026-01-06", Type: models.TypeVrat, Description: "Ekadashi fasting for blessings of progeny"},
	{ID: "2", Title: "Lohri", Date: "2026-01-13", Type: models.TypeUtsav, Description: "Celebration of harvest and bonfire festival"},
	{ID: "3", Title: "Makar Sankranti", Date: "2026-01-14", Type: models.TypeUtsav, Description: "Sun enters Capricorn, marks harvest season"},
	{ID: "4", Title: "Pongal", Date: "2026-01-14", Type: models.TypeUtsav, Description: "Tamil harvest festival"},
	{ID: "5", Title: "Shattila Ekadashi", Date: "2026-01-21", Type: models.TypeVrat, Description: "Ekadashi with sesame seed offerings"},
	{ID: "6", Title: "Republic Day", Date: "2026-01-26", Type: models.TypeUtsav, Description: "National celebration"},
	{ID: "7", Title: "Vasant Panchami", Date: "2026-01-29", Type: models.TypeUtsav, Description: "Worship of Goddess Saraswati"},

	// February
	{ID: "8", Title: "Jaya Ekadashi", Date: "2026-02-05", Type: models.TypeVrat, Description: "Ekadashi for victory over sins"},
	{ID: "9", Title: "Maha Shivaratri", Date: "2026-02-15", Type: models.TypeUtsav, Description: "Great night of Lord Shiva"},
	{ID: "10", Title: "Vijaya Ekadashi", Date: "2026-02-20", Type: models.TypeVrat, Description: "Ekadashi for success and victory"},

	// March
	{ID: "11", Title: "Amalaki Ekadashi", Date: "2026-03-07", Type: models.TypeVrat, Description: "Worship of Amla tree and Lord Vishnu"},
	{ID: "12", Title: "Holika Dahan", Date: "2026-03-13", Type: models.TypeUtsav, Description: "Bonfire night before Holi"},
	{ID: "13", Title: "Holi", Date: "2026-03-14", Type: models.TypeUtsav, Description: "Festival of colors"},
	{ID: "14", Title: "Papmochani Ekadashi", Date: "2026-03-22", Type: models.TypeVrat, Description: "Ekadashi for liberation from sins"},
	{ID: "15", Title: "Ugadi/Gudi Padwa", Date: "2026-03-28", Type: models.TypeUtsav, Description: "Hindu New Year"},
	{ID: "16", Title: "Chaitra Navratri Begins", Date: "2026-03-28", Type: models.TypeUtsav, Description: "Nine nights of Goddess Durga worship"},

	// April
	{ID: "17", Title: "Ram Navami", Date: "2026-04-05", Type: models.TypeUtsav, Description: "Birth of Lord Rama"},
	{ID: "18", Title: "Kamada Ekadashi", Date: "2026-04-06", Type: models.TypeVrat, Description: "Ekadashi for fulfillment of desires"},
	{ID: "19", Title: "Hanuman Jayanti", Date: "2026-04-12", Type: models.TypeUtsav, Description: "Birth of Lord Hanuman"},
	{ID: "20", Title: "Varuthini Ekadashi", Date: "2026-04-21", Type: models.TypeVrat, Description: "Ekadashi for protection"},
	{ID: "21", Title: "Akshaya Tritiya", Date: "2026-04-25", Type: models.TypeUtsav, Description: "Auspicious day for new beginnings"},

	// May
	{ID: "22", Title: "Mohini Ekadashi", Date: "2026-05-05", Type: models.TypeVrat, Description: "Ekadashi of Lord Vishnu's Mohini avatar"},
	{ID: "23", Title: "Buddha Purnima", Date: "2026-05-12", Type: models.TypeUtsav, Description: "Birth of Lord Buddha"},
	{ID: "24", Title: "Apara Ekadashi", Date: "2026-05-20", Type: models.TypeVrat, Description: "Ekadashi for ancestral blessings"},

	// June
	{ID: "25", Title: "Nirjala Ekadashi", Date: "2026-06-04", Type: models.TypeVrat, Description: "Waterless Ekadashi, most powerful fasting"},
	{ID: "26", Title: "Yogini Ekadashi", Date: "2026-06-19", Type: models.TypeVrat, Description: "Ekadashi for spiritual advancement"},
	{ID: "27", Title: "Jagannath Rath Yatra", Date: "2026-06-23", Type: models.TypeUtsav, Description: "Chariot festival of Lord Jagannath"},

	// July
	{ID: "28", Title: "Devshayani Ekadashi", Date: "2026-07-03", Type: models.TypeVrat, Description: "Lord Vishnu goes to cosmic sleep"},
	{ID: "29", Title: "Guru Purnima", Date: "2026-07-10", Type: models.TypeUtsav, Description: "Honoring spiritual teachers"},
	{ID: "30", Title: "Kamika Ekadashi", Date: "2026-07-18", Type: models.TypeVrat, Description: "Ekadashi for washing away sins"},

	// August
	{ID: "31", Title: "Shravana Putrada Ekadashi", Date: "2026-08-02", Type: models.TypeVrat, Description: "Ekadashi for progeny blessings"},
	{ID: "32", Title: "Nag Panchami", Date: "2026-08-06", Type: models.TypeUtsav, Description: "Worship of serpent deities"},
	{ID: "33", Title: "Raksha Bandhan", Date: "2026-08-09", Type: models.TypeUtsav, Description: "Festival of sibling love"},
	{ID: "34", Title: "Aja Ekadashi", Date: "2026-08-17", Type: models.TypeVrat, Description: "Ekadashi for liberation"},
	{ID: "35", Title: "Janmashtami", Date: "2026-08-22", Type: models.TypeUtsav, Description: "Birth of Lord Krishna"},

	// September
	{ID: "36", Title: "Parsva Ekadashi", Date: "2026-09-01", Type: models.TypeVrat, Description: "Ekadashi when Vishnu turns sides"},
	{ID: "37", Title: "Ganesh Chaturthi", Date: "2026-09-08", Type: models.TypeUtsav, Description: "Birth of Lord Ganesha"},
	{ID: "38", Title: "Indira Ekadashi", Date: "2026-09-15", Type: models.TypeVrat, Description: "Ekadashi for ancestral peace"},
	{ID: "39", Title: "Mahalaya Amavasya", Date: "2026-09-21", Type: models.TypeUtsav, Description: "Beginning of Durga Puja celebrations"},
	{ID: "40", Title: "Navratri Begins", Date: "2026-09-22", Type: models.TypeUtsav, Description: "Nine nights of Goddess Durga"},

	// October
	{ID: "41", Title: "Papankusha Ekadashi", Date: "2026-10-01", Type: models.TypeVrat, Description: "Ekadashi for destroying sins"},
	{ID: "42", Title: "Dussehra/Vijayadashami", Date: "2026-10-01", Type: models.TypeUtsav, Description: "Victory of good over evil"},
	{ID: "43", Title: "Sharad Purnima", Date: "2026-10-06", Type: models.TypeUtsav, Description: "Harvest moon festival"},
	{ID: "44", Title: "Karva Chauth", Date: "2026-10-11", Type: models.TypeVrat, Description: "Fasting for spouse's longevity"},
	{ID: "45", Title: "Rama Ekadashi", Date: "2026-10-15", Type: models.TypeVrat, Description: "Ekadashi dedicated to Lord Rama"},
	{ID: "46", Title: "Dhanteras", Date: "2026-10-18", Type: models.TypeUtsav, Description: "Worship of wealth and prosperity"},
	{ID: "47", Title: "Diwali", Date: "2026-10-20", Type: models.TypeUtsav, Description: "Festival of lights"},
	{ID: "48", Title: "Govardhan Puja", Date: "2026-10-21", Type: models.TypeUtsav, Description: "Krishna lifting Govardhan Hill"},
	{ID: "49", Title: "Bhai Dooj", Date: "2026-10-22", Type: models.TypeUtsav, Description: "Celebration of sibling bond"},
	{ID: "50", Title: "Devutthana Ekadashi", Date: "2026-10-31", Type: models.TypeVrat, Description: "Lord Vishnu awakens from sleep"},

	// November
	{ID: "51", Title: "Kartik Purnima", Date: "2026-11-05", Type: models.TypeUtsav, Description: "Dev Diwali and holy bath"},
	{ID: "52", Title: "Utpanna Ekadashi", Date: "2026-11-14", Type: models.TypeVrat, Description: "Origin of Ekadashi"},
	{ID: "53", Title: "Mokshada Ekadashi", Date: "2026-11-29", Type: models.TypeVrat, Description: "Ekadashi for liberation"},

	// December
	{ID: "54", Title: "Gita Jayanti", Date: "2026-12-06", Type: models.TypeUtsav, Description: "Anniversary of Bhagavad Gita"},
	{ID: "55", Title: "Saphala Ekadashi", Date: "2026-12-14", Type: models.TypeVrat, Description: "Ekadashi for success"},
	{ID: "56", Title: "Pausha Purnima", Date: "2026-12-19", Type: models.TypeUtsav, Description: "Full moon of Pausha month"},
	{ID: "57", Title: "Putrada Ekadashi", Date: "2026-12-29", Type: models.TypeVrat, Description: "Ekadashi for progeny blessings"},
}
