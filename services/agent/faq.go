package agent

import "strings"

// faqEntry answers a frequently asked question by keyword match. Entries are
// checked in order and the first hit wins, so more specific phrases sit above
// the generic ones that would shadow them.
type faqEntry struct {
	keywords []string
	answer   string
}

var faqTable = []faqEntry{
	{
		keywords: []string{"flight is delayed", "flight delay", "plane is late", "delayed flight", "flight gets delayed"},
		answer: "No problem at all. We track your flight number, so your driver adjusts to the actual arrival time. " +
			"Delays never cost you extra and your transfer is never released.",
	},
	{
		keywords: []string{"where do i meet", "meeting point", "find my driver", "where will the driver", "pick me up at the airport", "pickup point"},
		answer: "Your driver waits in the arrivals hall holding a sign with your name, right after you exit customs. " +
			"You will also get the driver's name and WhatsApp number the day before.",
	},
	{
		keywords: []string{"price include", "included in the price", "hidden fee", "extra charge", "what's included", "whats included"},
		answer: "The price you see is final: private vehicle, driver, tolls, fuel, and airport parking are all included. " +
			"No hidden fees, and no charge per suitcase.",
	},
	{
		keywords: []string{"price match", "cheaper price", "found it cheaper", "better price", "beat the price"},
		answer: "If you found the same private transfer cheaper elsewhere, send us the quote and we will match it. " +
			"Matched prices are honored exactly as quoted.",
	},
	{
		keywords: []string{"how do i pay", "payment method", "pay cash", "pay by card", "credit card", "pay the driver", "payment options"},
		answer: "You can pay online by card when booking, or in cash (USD or DOP) directly to the driver on arrival. " +
			"Card payments are processed securely by Stripe.",
	},
	{
		keywords: []string{"cancel", "cancellation", "refund", "money back"},
		answer: "Cancellations are free up to 24 hours before pickup and fully refunded. " +
			"Inside 24 hours, contact us and we will do our best to rebook or refund.",
	},
	{
		keywords: []string{"tip", "tipping", "gratuity", "propina"},
		answer: "Tipping is never required but always appreciated. Most guests tip 5-10 USD for a job well done.",
	},
	{
		keywords: []string{"car seat", "child seat", "booster", "baby seat", "infant"},
		answer: "Child and booster seats are available free of charge. Just mention the ages of the little ones " +
			"when you book and we will have the right seats installed.",
	},
	{
		keywords: []string{"safe", "safety", "licensed", "insured", "trust"},
		answer: "All our drivers are licensed, background-checked professionals and every vehicle carries full " +
			"passenger insurance. Thousands of travelers ride with us every month.",
	},
	{
		keywords: []string{"how long", "travel time", "how far", "drive from the airport", "minutes away"},
		answer: "Most transfers from Punta Cana airport to the Bavaro hotel zone take 20-40 minutes. " +
			"Uvero Alto runs about an hour, and La Romana around 50 minutes. Your driver knows the fastest route of the day.",
	},
	{
		keywords: []string{"wait for me", "waiting time", "how long will the driver wait", "shopping stop", "grocery stop"},
		answer: "Your driver waits up to 60 minutes after landing at no charge, and a quick supermarket stop on the " +
			"way to the hotel is free on private transfers.",
	},
	{
		keywords: []string{"luggage limit", "how many bags", "surfboard", "golf bag", "oversized"},
		answer: "Each vehicle lists its suitcase capacity, and carry-ons ride free. Surfboards, golf bags and other " +
			"oversized items fit in our vans; just tell us in advance so we send the right vehicle.",
	},
}

// matchFAQ returns the first FAQ entry whose keyword appears in the text.
func matchFAQ(text string) (faqEntry, bool) {
	lower := strings.ToLower(text)
	for _, entry := range faqTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry, true
			}
		}
	}
	return faqEntry{}, false
}
