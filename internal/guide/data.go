package guide

import "github.com/pkordes/smart-travel-planner/internal/domain"

// builtinEntries returns the bundled destinations in match order.
// China and India carry phrases only; Germany has no food section.
func builtinEntries() []domain.GuideEntry {
	return []domain.GuideEntry{
		{
			Key:      "france",
			Language: "French",
			Phrases: []domain.Phrase{
				{English: "Hello", Local: "Bonjour", Pronunciation: "bohn-zhoor"},
				{English: "Thank you", Local: "Merci", Pronunciation: "mehr-see"},
				{English: "Please", Local: "S'il vous plaît", Pronunciation: "seel voo play"},
				{English: "Excuse me", Local: "Excusez-moi", Pronunciation: "ex-koo-zay mwah"},
				{English: "How much?", Local: "Combien?", Pronunciation: "kohm-byen"},
				{English: "Where is...?", Local: "Où est...?", Pronunciation: "oo ay"},
				{English: "I need help", Local: "J'ai besoin d'aide", Pronunciation: "zhay buh-swahn ded"},
				{English: "Goodbye", Local: "Au revoir", Pronunciation: "oh ruh-vwahr"},
			},
			Etiquette: []domain.Tip{
				{Title: "Greetings", Content: "Greet with 'Bonjour' and handshake. Use 'Monsieur'/'Madame' formally."},
				{Title: "Dining", Content: "Keep hands on table (not lap). Say 'Bon appétit' before eating."},
				{Title: "Tipping", Content: "Service included. Round up bill or leave 5-10% for excellent service."},
				{Title: "Personal Space", Content: "Cheek kissing common among friends (2-4 kisses depending on region)."},
			},
			Food: []domain.Tip{
				{Title: "Local Specialties", Content: "Croissants, baguettes, cheese, wine, coq au vin, ratatouille"},
				{Title: "Dining Times", Content: "Breakfast: 7-9 AM, Lunch: 12-2 PM, Dinner: 7-9 PM"},
				{Title: "Street Food", Content: "Crêpes, galettes, croque-monsieur, falafel (in Paris)"},
				{Title: "Dietary Customs", Content: "Bread served with meals. Cheese course after main, before dessert."},
			},
		},
		{
			Key:      "spain",
			Language: "Spanish",
			Phrases: []domain.Phrase{
				{English: "Hello", Local: "Hola", Pronunciation: "oh-lah"},
				{English: "Thank you", Local: "Gracias", Pronunciation: "grah-see-ahs"},
				{English: "Please", Local: "Por favor", Pronunciation: "por fah-vor"},
				{English: "Excuse me", Local: "Perdón", Pronunciation: "pehr-dohn"},
				{English: "How much?", Local: "¿Cuánto cuesta?", Pronunciation: "kwahn-toh kwehs-tah"},
				{English: "Where is...?", Local: "¿Dónde está...?", Pronunciation: "dohn-deh ehs-tah"},
				{English: "I need help", Local: "Necesito ayuda", Pronunciation: "neh-seh-see-toh ah-yoo-dah"},
				{English: "Goodbye", Local: "Adiós", Pronunciation: "ah-dee-ohs"},
			},
			Etiquette: []domain.Tip{
				{Title: "Greetings", Content: "Handshakes for business, cheek kisses for friends and family."},
				{Title: "Dining", Content: "Late meals: lunch 2-4 PM, dinner 9-11 PM. Don't rush meals."},
				{Title: "Tipping", Content: "Not mandatory. Round up bill or leave 5-10% in restaurants."},
				{Title: "Personal Space", Content: "Physical contact common. Loud conversations normal in social settings."},
			},
			Food: []domain.Tip{
				{Title: "Local Specialties", Content: "Paella, tapas, jamón ibérico, gazpacho, churros con chocolate"},
				{Title: "Dining Times", Content: "Late meals: Lunch 2-4 PM, Dinner 9-11 PM, Tapas: 6-9 PM"},
				{Title: "Street Food", Content: "Churros, bocadillos, empanadas, fried fish"},
				{Title: "Dietary Customs", Content: "Tapas culture - small plates shared. Siesta break common."},
			},
		},
		{
			Key:      "italy",
			Language: "Italian",
			Phrases: []domain.Phrase{
				{English: "Hello", Local: "Ciao", Pronunciation: "chow"},
				{English: "Thank you", Local: "Grazie", Pronunciation: "graht-see-eh"},
				{English: "Please", Local: "Per favore", Pronunciation: "pehr fah-voh-reh"},
				{English: "Excuse me", Local: "Scusi", Pronunciation: "skoo-zee"},
				{English: "How much?", Local: "Quanto costa?", Pronunciation: "kwahn-toh koh-stah"},
				{English: "Where is...?", Local: "Dove è...?", Pronunciation: "doh-veh eh"},
				{English: "I need help", Local: "Ho bisogno di aiuto", Pronunciation: "oh bee-zohn-yoh dee ah-yoo-toh"},
				{English: "Goodbye", Local: "Arrivederci", Pronunciation: "ah-ree-veh-dehr-chee"},
			},
			Etiquette: []domain.Tip{
				{Title: "Greetings", Content: "Cheek kisses common. Use formal titles until invited to use first names."},
				{Title: "Dining", Content: "No cappuccino after 11 AM. Don't ask for cheese with seafood pasta."},
				{Title: "Tipping", Content: "Service often included. Round up or leave 1-2 euros per person."},
				{Title: "Personal Space", Content: "Close talking distance common. Expressive hand gestures normal."},
			},
			Food: []domain.Tip{
				{Title: "Local Specialties", Content: "Pizza, pasta, gelato, espresso, risotto, prosciutto"},
				{Title: "Dining Times", Content: "Breakfast: 7-10 AM, Lunch: 1-3 PM, Dinner: 8-10 PM"},
				{Title: "Street Food", Content: "Pizza al taglio, arancini, panini, supplì"},
				{Title: "Dietary Customs", Content: "Coffee culture - cappuccino only in morning. Pasta as first course."},
			},
		},
		{
			Key:      "japan",
			Language: "Japanese",
			Phrases: []domain.Phrase{
				{English: "Hello", Local: "こんにちは", Pronunciation: "kon-nichi-wa"},
				{English: "Thank you", Local: "ありがとう", Pronunciation: "ah-ree-gah-toh"},
				{English: "Please", Local: "お願いします", Pronunciation: "oh-ne-gai-shi-mas"},
				{English: "Excuse me", Local: "すみません", Pronunciation: "soo-mee-mah-sen"},
				{English: "How much?", Local: "いくらですか？", Pronunciation: "ee-koo-rah des-ka"},
				{English: "Where is...?", Local: "...はどこですか？", Pronunciation: "...wah do-ko des-ka"},
				{English: "I need help", Local: "助けてください", Pronunciation: "tah-skeh-teh koo-dah-sai"},
				{English: "Goodbye", Local: "さようなら", Pronunciation: "sah-yoh-nah-rah"},
			},
			Etiquette: []domain.Tip{
				{Title: "Greetings", Content: "Bow when greeting. Business cards exchanged with both hands."},
				{Title: "Dining", Content: "Say 'itadakimasu' before eating. Don't stick chopsticks upright in rice."},
				{Title: "Tipping", Content: "Not customary. May be considered rude. Excellent service is standard."},
				{Title: "Personal Space", Content: "Respect personal space. Quiet in public spaces. Remove shoes indoors."},
			},
			Food: []domain.Tip{
				{Title: "Local Specialties", Content: "Sushi, ramen, tempura, yakitori, okonomiyaki, takoyaki"},
				{Title: "Dining Times", Content: "Breakfast: 7-9 AM, Lunch: 12-1 PM, Dinner: 6-8 PM"},
				{Title: "Street Food", Content: "Takoyaki, taiyaki, yakitori, okonomiyaki at festivals"},
				{Title: "Dietary Customs", Content: "Say 'itadakimasu' before eating. Slurping noodles shows enjoyment."},
			},
		},
		{
			Key:      "germany",
			Language: "German",
			Phrases: []domain.Phrase{
				{English: "Hello", Local: "Hallo", Pronunciation: "hah-loh"},
				{English: "Thank you", Local: "Danke", Pronunciation: "dahn-keh"},
				{English: "Please", Local: "Bitte", Pronunciation: "bit-teh"},
				{English: "Excuse me", Local: "Entschuldigung", Pronunciation: "ent-shool-dee-goong"},
				{English: "How much?", Local: "Wie viel?", Pronunciation: "vee feel"},
				{English: "Where is...?", Local: "Wo ist...?", Pronunciation: "voh ist"},
				{English: "I need help", Local: "Ich brauche Hilfe", Pronunciation: "ish brow-che hil-fe"},
				{English: "Goodbye", Local: "Auf Wiedersehen", Pronunciation: "owf vee-der-zayn"},
			},
			Etiquette: []domain.Tip{
				{Title: "Greetings", Content: "Firm handshake with eye contact. Use formal titles until invited otherwise."},
				{Title: "Dining", Content: "Punctuality important. Keep hands visible on table. Say 'Guten Appetit'."},
				{Title: "Tipping", Content: "Round up to nearest euro or add 5-10%. Tell server the total including tip."},
				{Title: "Personal Space", Content: "Respect personal space. Direct communication valued."},
			},
		},
		{
			Key:      "china",
			Language: "Mandarin Chinese",
			Phrases: []domain.Phrase{
				{English: "Hello", Local: "你好", Pronunciation: "nee how"},
				{English: "Thank you", Local: "谢谢", Pronunciation: "shyeh-shyeh"},
				{English: "Please", Local: "请", Pronunciation: "ching"},
				{English: "Excuse me", Local: "对不起", Pronunciation: "way dway"},
				{English: "How much?", Local: "多少钱？", Pronunciation: "dwoh shao chyen"},
				{English: "Where is...?", Local: "...在哪里？", Pronunciation: "...dzai nah lee"},
				{English: "I need help", Local: "我需要帮助", Pronunciation: "wo shoo yow bang joo"},
				{English: "Goodbye", Local: "再见", Pronunciation: "dzai jyen"},
			},
		},
		{
			Key:      "india",
			Language: "Hindi",
			Phrases: []domain.Phrase{
				{English: "Hello", Local: "नमस्ते", Pronunciation: "nuh-muh-stay"},
				{English: "Thank you", Local: "धन्यवाद", Pronunciation: "dhun-yuh-vaad"},
				{English: "Please", Local: "कृपया", Pronunciation: "krip-yaa"},
				{English: "Excuse me", Local: "माफ़ कीजिए", Pronunciation: "maaf keejiye"},
				{English: "How much?", Local: "कितना?", Pronunciation: "kit-naa"},
				{English: "Where is...?", Local: "...कहाँ है?", Pronunciation: "...kahaan hai"},
				{English: "I need help", Local: "मुझे मदद चाहिए", Pronunciation: "mujhe madad chaahiye"},
				{English: "Goodbye", Local: "अलविदा", Pronunciation: "al-vi-daa"},
			},
		},
	}
}

// builtinDefault is served for destinations that match no key.
func builtinDefault() domain.GuideEntry {
	return domain.GuideEntry{
		Key:      domain.DefaultGuideKey,
		Language: "Local Language",
		Phrases: []domain.Phrase{
			{English: "Hello", Local: "Learn local greeting", Pronunciation: "Smile and be friendly"},
			{English: "Thank you", Local: "Learn local phrase", Pronunciation: "Show appreciation"},
			{English: "Please", Local: "Learn local phrase", Pronunciation: "Be polite"},
			{English: "Excuse me", Local: "Learn local phrase", Pronunciation: "Get attention politely"},
			{English: "How much?", Local: "Learn local phrase", Pronunciation: "Point and show numbers"},
			{English: "Where is...?", Local: "Learn local phrase", Pronunciation: "Use maps and gestures"},
			{English: "I need help", Local: "Learn local phrase", Pronunciation: "Find tourist information"},
			{English: "Goodbye", Local: "Learn local phrase", Pronunciation: "Wave and smile"},
		},
		Etiquette: []domain.Tip{
			{Title: "Greetings", Content: "Research local greeting customs. Handshakes usually safe for business."},
			{Title: "Dining", Content: "Observe local dining times and customs. Follow host's lead."},
			{Title: "Tipping", Content: "Research local tipping customs. Some cultures find tipping offensive."},
			{Title: "Personal Space", Content: "Observe personal distance. Some cultures stand closer when talking."},
		},
		Food: []domain.Tip{
			{Title: "Local Specialties", Content: "Research regional dishes and traditional cuisine before traveling"},
			{Title: "Dining Times", Content: "Check local meal times as they may differ from your home country"},
			{Title: "Street Food", Content: "Look for busy vendors with high turnover for fresh, safe options"},
			{Title: "Dietary Customs", Content: "Research any food restrictions or dining etiquette specific to region"},
		},
	}
}
