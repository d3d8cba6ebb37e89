// Package chatbot implements the FAQ rule table, the page-aware welcome
// selector, and the system prompt used when falling back to the completion API.
package chatbot

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/perspectivehealth/clinic-site/internal/clinic"
)

// Rule is one entry in the FAQ decision list: if any trigger matches, the
// canned answer and its suggestion chips are returned.
type Rule struct {
	Triggers    []*regexp.Regexp
	Answer      string
	Suggestions []string
}

// Match is a successful FAQ lookup.
type Match struct {
	Answer      string
	Suggestions []string
}

var (
	rulesOnce sync.Once
	ruleTable []Rule
)

// MatchFAQ scans the rule table in definition order and returns the first rule
// with any matching trigger. Order is load-bearing: narrow rules (provider
// names, specific services) are registered before broad catch-alls, so the
// table must stay an ordered slice, never a map.
func MatchFAQ(userMessage string) (Match, bool) {
	for _, rule := range rules() {
		for _, trigger := range rule.Triggers {
			if trigger.MatchString(userMessage) {
				return Match{Answer: rule.Answer, Suggestions: rule.Suggestions}, true
			}
		}
	}
	return Match{}, false
}

func rules() []Rule {
	rulesOnce.Do(func() {
		ruleTable = buildRules()
	})
	return ruleTable
}

func re(pattern string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + pattern)
}

func buildRules() []Rule {
	site := clinic.Site

	hours := strings.Join(clinic.HoursLines(), "\n")

	providerLines := make([]string, 0, len(clinic.Providers))
	for _, p := range clinic.Providers {
		providerLines = append(providerLines, fmt.Sprintf("• %s, %s — %s (%s)", p.Name, p.Credentials, p.Title, p.Specialty))
	}
	providerList := strings.Join(providerLines, "\n")

	insuranceLines := make([]string, 0, len(clinic.InsurancePartners))
	for _, i := range clinic.InsurancePartners {
		insuranceLines = append(insuranceLines, "• "+i.Name)
	}
	insuranceList := strings.Join(insuranceLines, "\n")

	serviceLines := make([]string, 0, len(clinic.Services))
	for _, s := range clinic.Services {
		serviceLines = append(serviceLines, "• "+s.Name)
	}
	serviceList := strings.Join(serviceLines, "\n")

	return []Rule{
		// Core clinic info
		{
			Triggers:    []*regexp.Regexp{re(`\b(hours?|open|close[sd]?|when)\b`)},
			Answer:      fmt.Sprintf("Our office hours are:\n%s\n\nYou can always call %s to confirm, especially around holidays!", hours, site.Phone),
			Suggestions: []string{"How do I schedule?", "Where are you located?"},
		},
		{
			Triggers:    []*regexp.Regexp{re(`\b(where|address|location|directions?|find you|located|map)\b`)},
			Answer:      fmt.Sprintf("We're located at %s, in the Urbandale/West Des Moines area of central Iowa, conveniently off Northpark Drive. You can reach us at %s if you need directions!", site.Address.Full, site.Phone),
			Suggestions: []string{"What are your hours?", "Do you offer telehealth?"},
		},
		{
			Triggers:    []*regexp.Regexp{re(`\b(phone|call|number|reach|contact)\b`)},
			Answer:      fmt.Sprintf("You can reach us at:\n📞 %s\n📧 %s\n\nOr visit our Contact page on the website to send us a message!", site.Phone, site.Email),
			Suggestions: []string{"What are your hours?", "How do I schedule?"},
		},

		// Insurance & payment
		{
			Triggers:    []*regexp.Regexp{re(`\b(insurance|accepts?|coverage|plans?|wellmark|united|aetna|cigna|medicare|optum|midlands)\b`)},
			Answer:      fmt.Sprintf("We accept most major insurance plans, including:\n%s\n\nWe also accept HSA/FSA funds and CareCredit. Some integrative services may be cash-pay. Call %s to verify your specific coverage before your visit — no surprises!", insuranceList, site.Phone),
			Suggestions: []string{"Self-pay options", "HSA/FSA info", "How do I become a new patient?"},
		},
		{
			Triggers:    []*regexp.Regexp{re(`\b(pay|cost|price|how much|afford|self.?pay|cash)\b`)},
			Answer:      fmt.Sprintf("We believe in transparent pricing. We accept most insurance plans, HSA/FSA funds, and CareCredit. If you don't have insurance or your plan doesn't cover a specific service, we offer fair self-pay rates.\n\nSelf-pay services include:\n• New Patient Comprehensive Visit (60–90 min)\n• Follow-Up Visit (30 min)\n• Hormone Evaluation & Consultation\n• Functional Medicine Consultation\n• Nutrition Counseling Session\n• Lab Processing (in addition to lab fees)\n\nPricing varies by service — call %s for a personalized quote before your visit!", site.Phone),
			Suggestions: []string{"What insurance do you accept?", "HSA/FSA info"},
		},
		{
			Triggers:    []*regexp.Regexp{re(`\b(hsa|fsa|health savings|flexible spending|pre.?tax)\b`)},
			Answer:      "Yes, we accept both HSA and FSA!\n\nHSA (Health Savings Account):\n• Use pre-tax dollars for eligible healthcare expenses\n• Accepted for most services at our clinic\n• Bring your HSA debit card or reimbursement form\n• Great for services with cost-sharing or deductibles\n\nFSA (Flexible Spending Account):\n• Employer-sponsored pre-tax healthcare spending account\n• Use for copays, deductibles, and eligible services\n• Check your FSA plan for covered services\n\nWe also accept CareCredit!",
			Suggestions: []string{"What insurance do you accept?", "Self-pay options"},
		},
		{
			Triggers:    []*regexp.Regexp{re(`\b(carecredit|care credit|payment plan|financing)\b`)},
			Answer:      "Yes, we accept CareCredit to help make healthcare more affordable! CareCredit offers flexible financing options for healthcare expenses. You can apply online or ask our team for details when you visit. We also accept HSA/FSA funds and most major insurance plans.",
			Suggestions: []string{"What insurance do you accept?", "How do I become a new patient?"},
		},

		// Providers. Name rules stay ahead of the generic team rule so a
		// message mentioning both a provider and "services" resolves to the
		// provider.
		{
			Triggers:    []*regexp.Regexp{re(`\baudrey\b`)},
			Answer:      "Audrey Gries, PA-C is a co-founder of Perspective Health with 15+ years of experience in primary care. She brings a compassionate, whole-person approach and has advanced training in functional medicine and hormone health. She partners with patients to uncover the root causes of their health challenges and build personalized, sustainable wellness plans.\n\nSpecialty: Primary Care & Hormone Health",
			Suggestions: []string{"Tell me about Stephanie", "Tell me about Tara", "How do I schedule?"},
		},
		{
			Triggers:    []*regexp.Regexp{re(`\bstephanie\b`)},
			Answer:      "Stephanie Erdmann, DNP is a Doctor of Nursing Practice who specializes in relationship-based care, integrative chronic disease management, and preventive wellness. She is passionate about empowering patients with the knowledge and tools to take charge of their health journey.\n\nSpecialty: Chronic Disease & Preventive Wellness",
			Suggestions: []string{"Tell me about Audrey", "Tell me about Tara", "How do I schedule?"},
		},
		{
			Triggers:    []*regexp.Regexp{re(`\btara\b`)},
			Answer:      "Tara Sayer, RN, BSN, MSCN, CNSC has 20+ years of healthcare experience combining intensive care nursing expertise with integrative medicine. She focuses on digestive health, metabolic wellness, and the connection between nutrition and health outcomes.\n\nSpecialty: Digestive Health & Clinical Nutrition",
			Suggestions: []string{"Tell me about Audrey", "Tell me about Stephanie", "How do I schedule?"},
		},
		{
			Triggers:    []*regexp.Regexp{re(`\b(providers?|doctors?|staff|team|who works|practitioners?|nurse|pa\b)`)},
			Answer:      fmt.Sprintf("Our care team includes:\n%s\n\nEach provider brings a unique perspective to our integrative approach. Want to learn more about a specific provider?", providerList),
			Suggestions: []string{"Tell me about Audrey", "Tell me about Stephanie", "Tell me about Tara"},
		},

		// Services
		{
			Triggers:    []*regexp.Regexp{re(`\b(services?|offers?|do you do|what do you|treat|speciali)`)},
			Answer:      fmt.Sprintf("We offer a personalized blend of integrative care:\n%s\n\nOur focus areas include hormone balance, gut health, thyroid support, and metabolic care. Want details on a specific service?", serviceList),
			Suggestions: []string{"Hormone Health", "Primary Care", "Digestive Health", "Functional Medicine"},
		},
		{
			Triggers:    []*regexp.Regexp{re(`\b(hormone|menopause|testosterone|thyroid|perimenopause|hot flash|libido|andropause|estrogen|progesterone)\b`)},
			Answer:      "Our Hormone Health services include thorough evaluation of your hormonal landscape — thyroid, sex hormones (estrogen, progesterone, testosterone), adrenal hormones, and metabolic markers.\n\nCommon signs of hormonal imbalance include fatigue that won't respond to rest, unexplained weight changes, mood disturbances, brain fog, sleep disruption, libido changes, irregular cycles, and hair loss.\n\nWe offer personalized treatment plans that may include bioidentical hormone therapy, targeted nutrition, and lifestyle modifications. We treat both men and women — including perimenopause, menopause, and low testosterone.\n\nLearn more: /services/hormone-health",
			Suggestions: []string{"Who are the providers?", "How do I schedule?", "Insurance"},
		},
		{
			Triggers:    []*regexp.Regexp{re(`\b(gut|digest|bloat|ibs|sibo|metaboli|weight|insulin|leaky gut|microbiome)\b`)},
			Answer:      "Our Digestive & Metabolic Health services address everything from IBS, SIBO, and bloating to metabolic syndrome, insulin resistance, and weight management.\n\nWe use advanced testing like microbiome analysis, SIBO breath testing, and intestinal permeability markers to find root causes. Treatment includes personalized nutrition plans, food sensitivity guidance, targeted probiotic and supplement recommendations.\n\nLearn more: /services/digestive-metabolic-health",
			Suggestions: []string{"What insurance do you accept?", "How do I schedule?"},
		},
		{
			Triggers:    []*regexp.Regexp{re(`\b(functional medicine|integrative|root cause|holistic|complementary)\b`)},
			Answer:      "Our Integrative and Functional Medicine approach views the body as an interconnected whole. Rather than simply managing symptoms, we ask why — exploring genetic, environmental, lifestyle, and biological factors.\n\nWe use advanced diagnostic testing (microbiome, nutrient status, inflammation markers, toxin load), detailed health timelines, and personalized treatment protocols. This includes nutrition therapy, targeted supplementation, mind-body practices, and lifestyle medicine.\n\nIntegrative medicine is not anti-science — evidence is the foundation. We integrate multiple evidence-based approaches.\n\nLearn more: /services/integrative-functional-medicine",
			Suggestions: []string{"What insurance do you accept?", "Tell me about your providers"},
		},
		{
			Triggers:    []*regexp.Regexp{re(`\b(primary care|annual|checkup|physical|preventive)\b`)},
			Answer:      "Our Comprehensive Primary Care goes far beyond annual checkups. We integrate conventional medicine with a root-cause, functional lens — evaluating how all aspects of your health (physical, hormonal, metabolic, and lifestyle) connect.\n\nWe provide preventive care, chronic disease management, acute illness treatment, and health optimization. Initial visits are 60–90 minutes with comprehensive lab work beyond standard panels.\n\nLearn more: /services/comprehensive-primary-care",
			Suggestions: []string{"What insurance do you accept?", "How do I become a new patient?"},
		},
		{
			Triggers:    []*regexp.Regexp{re(`\b(supplements?|iv therap|nutrition counseling|adrenal|immune)`)},
			Answer:      "Our Supplementary Services include personalized nutrition counseling, targeted supplement protocols, adrenal health support, and immune optimization. These complement your primary care or integrative treatment plan.\n\nServices are designed for patients looking to enhance outcomes, address nutrient deficiencies, support stress resilience, or boost immune function.\n\nLearn more: /services/supplementary-services",
			Suggestions: []string{"What services do you offer?", "How do I schedule?"},
		},

		// New patient & scheduling
		{
			Triggers:    []*regexp.Regexp{re(`\b(new patient|first visit|first time|get started|become a patient|sign up|onboard)\b`)},
			Answer:      fmt.Sprintf("Welcome! Here's how to get started:\n\n1. Reach Out — Call %s, email %s, or use our Contact page\n2. Complete Paperwork — We'll send intake forms to complete before your visit\n3. Your First Visit — Arrive 15 minutes early for your 60–90 minute appointment\n4. Your Care Plan — You'll receive a personalized plan with next steps and testing recommendations\n\nPlease bring: photo ID, insurance card, current medications & supplements with dosages, recent lab work/medical records, a list of symptoms and health goals, and emergency contact info.", site.Phone, site.Email),
			Suggestions: []string{"What insurance do you accept?", "Do you offer telehealth?", "What to bring"},
		},
		{
			Triggers:    []*regexp.Regexp{re(`\b(bring|prepare|before.*visit|what.*need)\b`)},
			Answer:      "Here's what to bring to your appointment:\n\n• Photo ID\n• Insurance card(s)\n• Current medications with dosages\n• Current supplements\n• Recent lab work or medical records\n• List of symptoms and health concerns\n• Health goals and questions\n• Emergency contact info\n\nThe more information you can share upfront, the more productive your visit will be! Arrive 15 minutes early for your first visit.",
			Suggestions: []string{"How long is the first visit?", "Do you offer telehealth?"},
		},
		{
			Triggers:    []*regexp.Regexp{re(`\b(how long|duration|appointment length|follow.?up)\b`)},
			Answer:      "Initial appointments are typically 60–90 minutes — we invest this time to thoroughly review your health history, symptoms, goals, and concerns. Follow-up appointments are generally 30–45 minutes. We believe taking the time upfront leads to better outcomes!",
			Suggestions: []string{"How do I become a new patient?", "What should I bring?"},
		},
		{
			Triggers:    []*regexp.Regexp{re(`\b(telehealth|virtual|video|remote|online visit)\b`)},
			Answer:      fmt.Sprintf("Yes! We offer telehealth appointments for established patients for appropriate visit types. Contact our office to determine if your needs can be addressed via telehealth — call %s or use our Contact page when scheduling!", site.Phone),
			Suggestions: []string{"How do I become a new patient?", "What are your hours?"},
		},
		{
			Triggers:    []*regexp.Regexp{re(`\b(schedule|book|appointment|make.*visit)\b`)},
			Answer:      fmt.Sprintf("You can schedule an appointment by:\n• Calling us at %s\n• Emailing %s\n• Using the Contact form on our website\n\nWe'll help you find the right provider and appointment type. New patients should allow 60–90 minutes for the initial visit!", site.Phone, site.Email),
			Suggestions: []string{"New patient info", "What are your hours?", "Telehealth"},
		},

		// Policies & logistics
		{
			Triggers:    []*regexp.Regexp{re(`\b(cancel|reschedule|no.?show|miss.*appointment)\b`)},
			Answer:      fmt.Sprintf("We ask that you provide at least 24 hours' notice to cancel or reschedule an appointment. Late cancellations or no-shows may be subject to a fee. We understand unexpected situations arise — please contact us as soon as possible if you need to reschedule at %s.", site.Phone),
			Suggestions: []string{"How do I schedule?", "What are your hours?"},
		},
		{
			Triggers:    []*regexp.Regexp{re(`\b(prescription|refill|medication|rx)\b`)},
			Answer:      fmt.Sprintf("Prescription refill requests should be submitted through your patient portal or by calling our office during business hours at %s. Please allow 2–3 business days for refill processing. Note that controlled substances require an in-person visit.", site.Phone),
			Suggestions: []string{"What are your hours?", "Telehealth"},
		},
		{
			Triggers:    []*regexp.Regexp{re(`\b(medical record|record.*request|chart|health record)\b`)},
			Answer:      fmt.Sprintf("You can request your medical records by contacting our office at %s. We comply with all HIPAA regulations regarding medical records requests and aim to fulfill requests within 30 business days.", site.Phone),
			Suggestions: []string{"Contact info", "What are your hours?"},
		},
		{
			Triggers:    []*regexp.Regexp{re(`\b(lab result|test result|blood work|lab.*back)\b`)},
			Answer:      fmt.Sprintf("Lab results are reviewed by your provider and communicated through the patient portal or by phone, depending on the nature of the results. Routine results are typically available within 5–7 business days. Abnormal or time-sensitive results will be communicated sooner. If you're waiting on results, feel free to call %s.", site.Phone),
			Suggestions: []string{"Contact info", "Prescription refills"},
		},
		{
			Triggers:    []*regexp.Regexp{re(`\b(child|kid|pediatric|son|daughter|baby|infant|minor)\b`)},
			Answer:      fmt.Sprintf("Our current practice focuses on adult patients (18+). We'd be happy to help connect you with appropriate pediatric resources in the area — just call us at %s and we can point you in the right direction!", site.Phone),
			Suggestions: []string{"What services do you offer?", "How do I become a new patient?"},
		},
		{
			Triggers:    []*regexp.Regexp{re(`\b(other doctor|existing doctor|current doctor|alongside|collaborative|coordinate|work with)\b`)},
			Answer:      "Absolutely — and we encourage it! We believe in collaborative care and are happy to work alongside your existing healthcare team. We can coordinate care and share records as appropriate and with your consent. Your health is a team effort!",
			Suggestions: []string{"What services do you offer?", "How do I become a new patient?"},
		},

		// Approach & values
		{
			Triggers:    []*regexp.Regexp{re(`\b(approach|philosophy|different|why.*choose|what sets|values|mission|believe)\b`)},
			Answer:      "At Perspective Health, we believe true healthcare means seeing the whole person — not just symptoms or lab values. Our approach is built on four pillars:\n\n• Collaborative Approach — our team works across disciplines to ensure every aspect of your health is considered\n• Root-Cause Focus — we invest time understanding why, not just what\n• Personalized Care Plans — built around your unique biology, lifestyle, and goals\n• Whole-Person Wellness — addressing physical health, mental wellness, and lifestyle as deeply interconnected\n\nWe combine evidence-based conventional medicine with functional and integrative approaches.",
			Suggestions: []string{"Meet our providers", "Our services", "How do I get started?"},
		},

		// Reviews
		{
			Triggers:    []*regexp.Regexp{re(`\b(reviews?|ratings?|testimonials?|recommend|reputation|what.*people.*say)`)},
			Answer:      fmt.Sprintf("We're proud of our 5.0-star rating on Google (%d reviews)! Our patients appreciate the time we take to truly listen and find root causes. Here's what they're saying:\n\n\"I've never felt so heard by a healthcare provider. Audrey took over an hour to go through my history and we came up with a real plan.\" — Jennifer M.\n\n\"After years of being told my labs were 'normal' while I felt terrible, Stephanie actually dug deeper.\" — Robert K.\n\n\"Tara completely changed how I think about nutrition and gut health.\" — Sarah L.\n\nYou can see all our reviews on Google!", site.Reviews.Count),
			Suggestions: []string{"Meet our providers", "How do I get started?"},
		},
	}
}
