package agent

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"tropicab/models"
	"tropicab/services/catalog"
	"tropicab/services/qa"
	"tropicab/services/storage"

	"go.uber.org/zap"
)

// Engine is the conversational booking agent. It holds no conversation state
// of its own: every turn takes the current BookingContext, mutates it, and
// returns the response. The caller persists the context between turns.
type Engine struct {
	catalog catalog.Service
	qa      qa.Service
	storage storage.StorageService
	logger  *zap.Logger
}

// NewEngine wires the agent. qa and storage may be nil; the engine then
// answers general questions with the canned fallback and skips image URLs.
func NewEngine(cat catalog.Service, qaSvc qa.Service, store storage.StorageService, logger *zap.Logger) *Engine {
	return &Engine{catalog: cat, qa: qaSvc, storage: store, logger: logger}
}

// guard is one escape hatch. Guards are evaluated strictly top-down before
// any step handler runs; later guards assume earlier ones already filtered
// their cases out, so the order of the list is part of the behavior.
type guard struct {
	matches func(e *Engine, bc *BookingContext, lower string) bool
	handle  func(ctx context.Context, e *Engine, bc *BookingContext, lower, raw string, history []models.ChatMessage) *models.AgentResponse
}

var guards = []guard{
	{matchesLanguageSwitch, handleLanguageSwitch},
	{matchesReset, handleReset},
	{matchesGreeting, handleGreeting},
	{matchesContinue, handleContinue},
	{matchesIdleFastPath, handleIdleFastPath},
	{matchesFAQ, handleFAQ},
	{matchesGeneralQuestion, handleGeneralQuestion},
}

// ProcessMessage runs one conversation turn. No input is ever fatal: parse
// failures re-prompt, and an unexpected panic is swallowed into the generic
// fallback so the user never sees a technical error.
func (e *Engine) ProcessMessage(ctx context.Context, bc *BookingContext, text string, history []models.ChatMessage) (resp *models.AgentResponse) {
	defer func() {
		if r := recover(); r != nil {
			if e.logger != nil {
				e.logger.Error("agent: recovered from turn panic", zap.Any("panic", r))
			}
			resp = genericFallback(bc)
		}
	}()

	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return e.promptForStep(bc)
	}

	for _, g := range guards {
		if g.matches(e, bc, lower) {
			return g.handle(ctx, e, bc, lower, text, history)
		}
	}
	return e.dispatchStep(bc, lower, text)
}

// ProcessQuery is the widget-facing alias for ProcessMessage.
func (e *Engine) ProcessQuery(ctx context.Context, bc *BookingContext, text string, history []models.ChatMessage) *models.AgentResponse {
	return e.ProcessMessage(ctx, bc, text, history)
}

// SetContextForPriceScan is the re-entry point used after a UI-driven
// vehicle/price interaction: the widget seeds the context and the flow
// resumes at vehicle selection (or trip type when a vehicle came along).
func (e *Engine) SetContextForPriceScan(bc *BookingContext, sel models.PriceScanSelection) *models.AgentResponse {
	if sel.Airport != "" {
		bc.Airport = sel.Airport
	}
	if sel.Hotel != "" {
		bc.Hotel = sel.Hotel
	}
	if sel.Region != "" {
		bc.Region = sel.Region
	}
	if sel.Passengers > 0 {
		bc.Passengers = sel.Passengers
	}
	if sel.Suitcases >= 0 {
		bc.Suitcases = sel.Suitcases
	}
	if sel.Vehicle != "" {
		bc.Vehicle = sel.Vehicle
		bc.Step = StepAwaitingTripType
		return e.promptForStep(bc)
	}
	return e.priceScanResponse(bc)
}

// --- Escape hatches ---

var spanishSwitch = []string{"in spanish", "en español", "en espanol", "habla español", "speak spanish", "español por favor"}
var englishSwitch = []string{"in english", "en inglés", "en ingles", "speak english", "english please"}

func matchesLanguageSwitch(_ *Engine, _ *BookingContext, lower string) bool {
	return containsAny(lower, spanishSwitch) || containsAny(lower, englishSwitch)
}

func handleLanguageSwitch(_ context.Context, _ *Engine, bc *BookingContext, lower, _ string, _ []models.ChatMessage) *models.AgentResponse {
	if containsAny(lower, spanishSwitch) {
		bc.Language = "es"
		return &models.AgentResponse{
			Message:        "¡Claro! Seguimos en español. ¿En qué te puedo ayudar?",
			LanguageSwitch: "es",
		}
	}
	bc.Language = "en"
	return &models.AgentResponse{
		Message:        "Sure, switching to English. How can I help?",
		LanguageSwitch: "en",
	}
}

var resetPhrases = []string{"start over", "start again", "reset", "restart", "new booking", "empezar de nuevo"}

func matchesReset(_ *Engine, _ *BookingContext, lower string) bool {
	return containsAny(lower, resetPhrases)
}

func handleReset(_ context.Context, _ *Engine, bc *BookingContext, _, _ string, _ []models.ChatMessage) *models.AgentResponse {
	bc.Reset()
	return welcomeResponse()
}

var greetingRe = regexp.MustCompile(`^(hi|hello|hey|hola|buenas|good\s+(morning|afternoon|evening))[\s!.,]*$`)

func matchesGreeting(_ *Engine, bc *BookingContext, lower string) bool {
	return bc.Step == StepIdle && greetingRe.MatchString(lower)
}

func handleGreeting(_ context.Context, _ *Engine, _ *BookingContext, _, _ string, _ []models.ChatMessage) *models.AgentResponse {
	return welcomeResponse()
}

var continuePhrases = []string{"continue", "resume", "keep going", "where were we", "continuar", "pick up where"}

func matchesContinue(_ *Engine, _ *BookingContext, lower string) bool {
	return containsAny(lower, continuePhrases)
}

func handleContinue(_ context.Context, e *Engine, bc *BookingContext, _, _ string, _ []models.ChatMessage) *models.AgentResponse {
	if bc.Step == StepIdle {
		return welcomeResponse()
	}
	resp := e.promptForStep(bc)
	resp.Message = "Welcome back!" + recap(bc) + "\n\n" + resp.Message
	return resp
}

func matchesIdleFastPath(e *Engine, bc *BookingContext, lower string) bool {
	return bc.Step == StepIdle && e.extractBookingInformation(lower).any()
}

func handleIdleFastPath(_ context.Context, e *Engine, bc *BookingContext, lower, _ string, _ []models.ChatMessage) *models.AgentResponse {
	return e.handleExtractedBookingInfo(bc, e.extractBookingInformation(lower))
}

func matchesFAQ(_ *Engine, _ *BookingContext, lower string) bool {
	_, ok := matchFAQ(lower)
	return ok
}

func handleFAQ(_ context.Context, _ *Engine, bc *BookingContext, lower, _ string, _ []models.ChatMessage) *models.AgentResponse {
	entry, _ := matchFAQ(lower)
	resp := &models.AgentResponse{Message: entry.answer}
	if bc.Step != StepIdle {
		resp.Message += recap(bc)
		resp.Suggestions = []string{"Continue"}
	} else {
		resp.Suggestions = welcomeSuggestions
	}
	return resp
}

var questionStarts = []string{"what", "where", "when", "why", "who", "how", "can", "could", "do", "does", "is", "are", "will", "should"}

var numericOnlyRe = regexp.MustCompile(`^\d+$`)
var bareYesNoRe = regexp.MustCompile(`^(yes|yeah|yep|sure|ok|okay|no|nope|nah|si|sí)$`)
var bareAirportRe = regexp.MustCompile(`^(puj|sdq|sti|pop)$`)
var bareTripTypeRe = regexp.MustCompile(`^(one way|one-way|round trip|round-trip|return|single)$`)

func matchesGeneralQuestion(e *Engine, _ *BookingContext, lower string) bool {
	// Booking-input-shaped strings are never treated as questions, even with
	// a trailing "?". Removing any one of these exclusions changes behavior.
	if numericOnlyRe.MatchString(lower) ||
		bareYesNoRe.MatchString(lower) ||
		bareAirportRe.MatchString(lower) ||
		bareTripTypeRe.MatchString(lower) ||
		e.isVehicleName(lower) {
		return false
	}
	if strings.HasSuffix(lower, "?") || strings.Contains(lower, "tell me about") {
		return true
	}
	for _, w := range questionStarts {
		if strings.HasPrefix(lower, w+" ") {
			return true
		}
	}
	return false
}

func handleGeneralQuestion(ctx context.Context, e *Engine, bc *BookingContext, _, raw string, history []models.ChatMessage) *models.AgentResponse {
	answer := qa.FallbackAnswer
	if e.qa != nil {
		if a, err := e.qa.Ask(ctx, raw, history, bc.Step != StepIdle); err == nil {
			answer = a
		} else if e.logger != nil {
			e.logger.Warn("agent: qa call failed, using fallback", zap.Error(err))
		}
	}
	resp := &models.AgentResponse{Message: answer}
	if bc.Step != StepIdle {
		resp.Message += recap(bc)
		resp.Suggestions = []string{"Continue"}
	} else {
		resp.Suggestions = welcomeSuggestions
	}
	return resp
}

// --- Step dispatch ---

func (e *Engine) dispatchStep(bc *BookingContext, lower, raw string) *models.AgentResponse {
	switch bc.Step {
	case StepIdle:
		return e.handleIdle(bc, lower)
	case StepAwaitingAirport:
		return e.handleAwaitingAirport(bc, lower)
	case StepAwaitingHotel:
		return e.handleAwaitingHotel(bc, lower, raw)
	case StepAwaitingPropertyResolution:
		return e.handleAwaitingPropertyResolution(bc, lower)
	case StepAwaitingPassengers:
		return e.handleAwaitingPassengers(bc, lower)
	case StepAwaitingLuggage:
		return e.handleAwaitingLuggage(bc, lower)
	case StepAwaitingVehicleSelection:
		return e.handleAwaitingVehicleSelection(bc, lower)
	case StepAwaitingTripType:
		return e.handleAwaitingTripType(bc, lower)
	case StepAwaitingConfirmation:
		return e.handleAwaitingConfirmation(bc, lower)
	}
	return genericFallback(bc)
}

var bookingIntentWords = []string{"book", "transfer", "ride", "taxi", "shuttle", "pickup", "quote", "price", "traslado"}

func (e *Engine) handleIdle(bc *BookingContext, lower string) *models.AgentResponse {
	if containsAny(lower, bookingIntentWords) {
		bc.Step = StepAwaitingAirport
		return e.promptForStep(bc)
	}
	return genericFallback(bc)
}

func (e *Engine) handleAwaitingAirport(bc *BookingContext, lower string) *models.AgentResponse {
	code := ExtractAirport(lower)
	if code == "" {
		resp := e.promptForStep(bc)
		resp.Message = "Sorry, I didn't catch the airport. " + resp.Message
		return resp
	}
	bc.Airport = code
	bc.Step = StepAwaitingHotel
	resp := e.promptForStep(bc)
	resp.Message = fmt.Sprintf("Perfect — %s. ", AirportNames[code]) + resp.Message
	return resp
}

func (e *Engine) handleAwaitingHotel(bc *BookingContext, lower, raw string) *models.AgentResponse {
	res := ResolveDestination(lower, e.hotels())
	switch {
	case res.Hotel != nil:
		e.setHotel(bc, res.Hotel)
		bc.Step = StepAwaitingPassengers
		return e.promptForStep(bc)
	case res.Brand != "":
		bc.PendingBrand = res.Brand
		bc.PendingProperties = hotelNames(res.Candidates)
		bc.Step = StepAwaitingPropertyResolution
		return e.promptForStep(bc)
	case res.Zone != "":
		bc.Region = res.Zone
		bc.Hotel = GuessHotelName(raw)
		bc.Step = StepAwaitingPassengers
		return e.promptForStep(bc)
	}

	if guess := GuessHotelName(raw); guess != "" {
		bc.Hotel = guess
		bc.Step = StepAwaitingPassengers
		return e.promptForStep(bc)
	}
	resp := e.promptForStep(bc)
	resp.Message = "I didn't recognize that one. " + resp.Message
	return resp
}

func (e *Engine) handleAwaitingPropertyResolution(bc *BookingContext, lower string) *models.AgentResponse {
	name := pickProperty(lower, bc.PendingProperties)
	if name == "" {
		resp := e.promptForStep(bc)
		resp.Message = "Which of these is it? " + resp.Message
		return resp
	}

	if h := e.hotelByName(name); h != nil {
		e.setHotel(bc, h)
	} else {
		bc.Hotel = name
	}
	bc.PendingBrand = ""
	bc.PendingProperties = nil
	bc.Step = StepAwaitingPassengers
	return e.promptForStep(bc)
}

var soloWords = []string{"solo", "just me", "alone", "myself", "only me"}
var coupleWords = []string{"couple", "my wife", "my husband", "my partner", "the two of us", "both of us"}

func (e *Engine) handleAwaitingPassengers(bc *BookingContext, lower string) *models.AgentResponse {
	n, ok := 0, false
	switch {
	case containsAny(lower, soloWords):
		n, ok = 1, true
	case containsAny(lower, coupleWords):
		n, ok = 2, true
	default:
		n, ok = bareCount(lower, 1, 50)
		if !ok {
			n, ok = ExtractPassengers(lower)
		}
	}
	if !ok {
		resp := e.promptForStep(bc)
		resp.Message = "I need a passenger count between 1 and 50. " + resp.Message
		return resp
	}
	bc.Passengers = n
	bc.Step = StepAwaitingLuggage
	return e.promptForStep(bc)
}

var noLuggageWords = []string{"none", "no bags", "no luggage", "nothing", "carry-on only", "carry on only"}

func (e *Engine) handleAwaitingLuggage(bc *BookingContext, lower string) *models.AgentResponse {
	n, ok := 0, false
	switch {
	case containsAny(lower, noLuggageWords):
		n, ok = 0, true
	default:
		n, ok = bareCount(lower, 0, 50)
		if !ok {
			n, ok = ExtractLuggage(lower)
		}
	}
	if !ok {
		resp := e.promptForStep(bc)
		resp.Message = "How many suitcases? A number between 0 and 50 works. " + resp.Message
		return resp
	}
	bc.Suitcases = n
	// Deliberate break from ask-then-advance: the luggage answer completes
	// the route, so the reply is a price scan across every vehicle and the
	// selection happens in the widget UI.
	return e.priceScanResponse(bc)
}

func (e *Engine) handleAwaitingVehicleSelection(bc *BookingContext, lower string) *models.AgentResponse {
	v := e.vehicleInText(lower)
	if v == nil {
		resp := e.promptForStep(bc)
		resp.Message = "Just tap or name one of the vehicles. " + resp.Message
		return resp
	}
	bc.Vehicle = v.Name
	bc.Step = StepAwaitingTripType
	resp := e.promptForStep(bc)
	if url := e.vehicleImageURL(v.Name); url != "" {
		resp.VehicleImage = url
	}
	return resp
}

func (e *Engine) handleAwaitingTripType(bc *BookingContext, lower string) *models.AgentResponse {
	tt := ExtractTripType(lower)
	if tt == "" {
		resp := e.promptForStep(bc)
		resp.Message = "One-way or round trip? " + resp.Message
		return resp
	}
	bc.TripType = tt
	e.applyQuote(bc)
	bc.Step = StepAwaitingConfirmation
	return e.summaryResponse(bc)
}

var affirmativeRe = regexp.MustCompile(`^(yes|yeah|yep|sure|ok|okay|si|sí)\b`)
var affirmativePhrases = []string{"confirm", "book it", "go ahead", "sounds good", "looks good", "let's do it", "lets do it", "perfect"}
var changeVehiclePhrases = []string{"change vehicle", "change the vehicle", "different vehicle", "other vehicle", "another vehicle", "see vehicles again"}

func (e *Engine) handleAwaitingConfirmation(bc *BookingContext, lower string) *models.AgentResponse {
	if containsAny(lower, changeVehiclePhrases) {
		return e.priceScanResponse(bc)
	}
	if v := e.vehicleInText(lower); v != nil {
		// Restating a vehicle re-prices and re-shows the summary without
		// changing step.
		bc.Vehicle = v.Name
		e.applyQuote(bc)
		return e.summaryResponse(bc)
	}
	if affirmativeRe.MatchString(lower) || containsAny(lower, affirmativePhrases) {
		action := bookingAction(bc)
		resp := &models.AgentResponse{
			Message: "🎉 Excellent! I'm opening the booking window — add your flight details and payment " +
				"there and you're all set. ¡Buen viaje!",
			BookingAction: action,
		}
		bc.Reset()
		return resp
	}
	resp := e.summaryResponse(bc)
	resp.Message = "Just say \"yes\" to book, or \"change vehicle\" if you'd like other options.\n\n" + resp.Message
	return resp
}

// --- Idle fast path ---

// extracted is everything one free-text message volunteered at once.
type extracted struct {
	airport    string
	passengers int
	luggage    int
	hasLuggage bool
	tripType   string
	date       string
	res        Resolution
}

func (ex extracted) any() bool {
	return ex.airport != "" || ex.passengers > 0 || ex.hasLuggage ||
		ex.tripType != "" || ex.date != "" || !ex.res.Empty()
}

func (e *Engine) extractBookingInformation(lower string) extracted {
	var ex extracted
	ex.airport = ExtractAirport(lower)
	ex.passengers, _ = ExtractPassengers(lower)
	ex.luggage, ex.hasLuggage = ExtractLuggage(lower)
	ex.tripType = ExtractTripType(lower)
	ex.date = ExtractDate(lower)
	ex.res = ResolveDestination(lower, e.hotels())
	return ex
}

// handleExtractedBookingInfo jumps straight into the state whose slot is
// still missing, letting users skip turns by volunteering information early.
func (e *Engine) handleExtractedBookingInfo(bc *BookingContext, ex extracted) *models.AgentResponse {
	if ex.airport != "" {
		bc.Airport = ex.airport
	}
	if ex.passengers > 0 {
		bc.Passengers = ex.passengers
	}
	if ex.hasLuggage {
		bc.Suitcases = ex.luggage
	}
	if ex.tripType != "" {
		bc.TripType = ex.tripType
	}
	if ex.date != "" {
		bc.TravelDate = ex.date
	}
	switch {
	case ex.res.Hotel != nil:
		e.setHotel(bc, ex.res.Hotel)
	case ex.res.Brand != "":
		bc.PendingBrand = ex.res.Brand
		bc.PendingProperties = hotelNames(ex.res.Candidates)
	case ex.res.Zone != "":
		bc.Region = ex.res.Zone
	}

	switch {
	case bc.PendingBrand != "":
		bc.Step = StepAwaitingPropertyResolution
	case bc.Airport == "":
		bc.Step = StepAwaitingAirport
	case bc.Hotel == "" && bc.Region == "":
		bc.Step = StepAwaitingHotel
	case bc.Passengers == 0:
		bc.Step = StepAwaitingPassengers
	case !bc.HasLuggage():
		bc.Step = StepAwaitingLuggage
	default:
		return e.priceScanResponse(bc)
	}

	resp := e.promptForStep(bc)
	if ack := ackExtracted(bc); ack != "" {
		resp.Message = ack + " " + resp.Message
	}
	return resp
}

func ackExtracted(bc *BookingContext) string {
	var parts []string
	if bc.Airport != "" {
		parts = append(parts, AirportNames[bc.Airport])
	}
	if label := destinationLabel(bc); label != "" {
		parts = append(parts, label)
	}
	if len(parts) == 0 {
		return ""
	}
	return "Got it — " + strings.Join(parts, " → ") + "."
}

// --- Helpers ---

func (e *Engine) priceScanResponse(bc *BookingContext) *models.AgentResponse {
	bc.Step = StepAwaitingVehicleSelection
	distance := EstimateDistanceKm(bc.Hotel+" "+bc.Region, bc.Airport)
	opts := BuildVehicleOptions(e.vehicles(), e.ruleSource(), bc.Airport, bc.Region,
		distance, e.discountPct(), bc.Passengers, bc.Suitcases)
	for i := range opts {
		opts[i].ImageURL = e.vehicleImageURL(opts[i].Name)
	}

	var names []string
	for _, o := range opts {
		names = append(names, o.Name)
	}
	return &models.AgentResponse{
		Message: "Here are the vehicles for your route — prices are per vehicle, not per person. " +
			"The highlighted one is the cheapest that fits your group.",
		Suggestions: names,
		PriceScan: &models.PriceScanRequest{
			Airport:    bc.Airport,
			Hotel:      destinationLabel(bc),
			Region:     bc.Region,
			Passengers: bc.Passengers,
			Suitcases:  bc.Suitcases,
			Options:    opts,
		},
	}
}

// applyQuote recomputes the context price for the chosen vehicle and trip
// type. Pure inputs in, so re-deriving after a discount change reproduces
// identical results.
func (e *Engine) applyQuote(bc *BookingContext) {
	v := e.vehicleByName(bc.Vehicle)
	if v == nil {
		return
	}
	distance := EstimateDistanceKm(bc.Hotel+" "+bc.Region, bc.Airport)
	in := QuoteInput{
		TripType:     bc.TripType,
		DistanceKm:   distance,
		DiscountPct:  e.discountPct(),
		MatchedPrice: bc.MatchedPrice,
		Rule:         e.rule(bc.Airport, bc.Region, bc.Vehicle),
		Vehicle:      *v,
	}
	q := ComputeQuote(in)
	bc.Price = q.Price
	bc.PriceSource = q.Source
	if in.DiscountPct > 0 && q.Source != models.PriceSourcePriceMatch {
		in.DiscountPct = 0
		bc.OriginalPrice = ComputeQuote(in).Price
	} else {
		bc.OriginalPrice = 0
	}
}

func (e *Engine) hotels() []models.Hotel {
	if e.catalog == nil {
		return nil
	}
	return e.catalog.Hotels()
}

func (e *Engine) vehicles() []models.VehicleType {
	if e.catalog != nil {
		if v := e.catalog.Vehicles(); len(v) > 0 {
			return v
		}
	}
	return fallbackVehicleTypes
}

func (e *Engine) ruleSource() ruleLookup {
	if e.catalog == nil {
		return nil
	}
	return e.catalog
}

func (e *Engine) rule(airport, zone, vehicle string) *models.PricingRule {
	if e.catalog == nil {
		return nil
	}
	return e.catalog.Rule(airport, zone, vehicle)
}

func (e *Engine) discountPct() float64 {
	if e.catalog == nil {
		return 0
	}
	return e.catalog.DiscountPct()
}

func (e *Engine) hotelByName(name string) *models.Hotel {
	for _, h := range e.hotels() {
		if strings.EqualFold(h.Name, name) {
			hh := h
			return &hh
		}
	}
	return nil
}

func (e *Engine) vehicleByName(name string) *models.VehicleType {
	for _, v := range e.vehicles() {
		if strings.EqualFold(v.Name, name) {
			vv := v
			return &vv
		}
	}
	return nil
}

func (e *Engine) vehicleInText(lower string) *models.VehicleType {
	for _, v := range e.vehicles() {
		if strings.Contains(lower, strings.ToLower(v.Name)) {
			vv := v
			return &vv
		}
	}
	return nil
}

func (e *Engine) isVehicleName(lower string) bool {
	for _, v := range e.vehicles() {
		if strings.EqualFold(lower, v.Name) {
			return true
		}
	}
	return false
}

func (e *Engine) vehicleNames() []string {
	var names []string
	for _, v := range e.vehicles() {
		names = append(names, v.Name)
	}
	return names
}

func (e *Engine) vehicleImageURL(name string) string {
	if e.storage == nil {
		return ""
	}
	v := e.vehicleByName(name)
	if v == nil || v.ImagePublicID == "" {
		return ""
	}
	url, err := e.storage.DeliveryURL(v.ImagePublicID)
	if err != nil {
		return ""
	}
	return url
}

func (e *Engine) galleryURLs(name string) []string {
	if e.storage == nil {
		return nil
	}
	v := e.vehicleByName(name)
	if v == nil {
		return nil
	}
	var urls []string
	for _, id := range v.GalleryIDs {
		if url, err := e.storage.DeliveryURL(id); err == nil {
			urls = append(urls, url)
		}
	}
	return urls
}

func (e *Engine) setHotel(bc *BookingContext, h *models.Hotel) {
	bc.Hotel = h.Name
	bc.Region = h.Zone
	bc.ResortPropertyID = h.ID
}

func destinationLabel(bc *BookingContext) string {
	if bc.Hotel != "" {
		return bc.Hotel
	}
	return bc.Region
}

func hotelNames(hotels []models.Hotel) []string {
	var names []string
	for _, h := range hotels {
		names = append(names, h.Name)
	}
	return names
}

// pickProperty matches a disambiguation reply against the candidate list,
// accepting a 1-based index or a (partial) name either direction.
func pickProperty(lower string, candidates []string) string {
	if n, err := strconv.Atoi(strings.TrimSpace(lower)); err == nil {
		if n >= 1 && n <= len(candidates) {
			return candidates[n-1]
		}
		return ""
	}
	for _, name := range candidates {
		ln := strings.ToLower(name)
		if strings.Contains(lower, ln) || strings.Contains(ln, lower) {
			return name
		}
	}
	for _, name := range candidates {
		if allWordsPresent(lower, name) {
			return name
		}
	}
	return ""
}

func bareCount(lower string, min, max int) (int, bool) {
	s := strings.TrimSpace(lower)
	n, ok := parseCount(s)
	if !ok || n < min || n > max {
		return 0, false
	}
	return n, true
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
