package belboard

// Seed is the injected data source for one portal session. It mirrors the
// sections the portal renders; the core treats it as already validated
// (ReadSeedFile performs schema validation at the loader boundary).
type Seed struct {
	UserProfile   UserProfile     `json:"user_profile" yaml:"user_profile"`
	Notifications []Notification  `json:"notifications" yaml:"notifications"`
	SummaryStats  []SummaryStat   `json:"summary_stats" yaml:"summary_stats"`
	Leaderboard   []LeaderboardEntry `json:"leaderboard" yaml:"leaderboard"`
	Payouts       PayoutSection   `json:"payouts" yaml:"payouts"`
	Orders        []Order         `json:"orders" yaml:"orders"`
	Assets        []Asset         `json:"assets" yaml:"assets"`
	Tickets       []Ticket        `json:"tickets" yaml:"tickets"`
	Announcements []Announcement  `json:"announcements" yaml:"announcements"`
}

// UserProfile identifies the signed-in admin shown in the header.
type UserProfile struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Role  string `json:"role" yaml:"role"`
}

// PayoutSection groups the payout history with its schedule banner.
type PayoutSection struct {
	PayoutDayMessage string        `json:"payout_day_message" yaml:"payout_day_message"`
	History          []PayoutBatch `json:"history" yaml:"history"`
}

// DefaultSeed returns the built-in demo dataset used when no seed file is
// supplied.
func DefaultSeed() *Seed {
	return &Seed{
		UserProfile: UserProfile{
			Name:  "Abby Dong",
			Email: "abby.dong@advantech.com",
			Role:  "Admin",
		},
		Notifications: []Notification{
			{Type: "admin-alert", TagText: "Admin Alert", Title: "New Support Ticket - Payment Issue", Date: "2025-08-30", Details: "User Referral ID: KTWBELF9A submitted a ticket regarding payment delays"},
			{Type: "admin-system", TagText: "System", Title: "Database Backup Completed", Date: "2025-08-30", Details: "Daily backup completed successfully at 02:00 AM"},
			{Type: "admin-user", TagText: "User Management", Title: "5 New BEL Registrations Pending", Date: "2025-08-29", Details: "Review required for new user applications"},
			{Type: "important", TagText: "Important", Title: "September Earnings Payout Postponed", Date: "2025-08-26"},
			{Type: "new-product", TagText: "New Campaign", Title: "ADAM Remote I/O Series are now available for promotion", Date: "2025-08-25"},
		},
		SummaryStats: []SummaryStat{
			{Title: "BEL Count (#)", Value: "152", Trend: "+5.1%", TrendText: "MoM", Status: "positive"},
			{Title: "Total Clicks (#)", Value: "13,492", Trend: "+12.3%", TrendText: "MoM", Status: "positive"},
			{Title: "Total Orders (#)", Value: "851", Trend: "+8.2%", TrendText: "MoM", Status: "positive"},
			{Title: "Revenue ($)", Value: "$120k", Trend: "+15.8%", TrendText: "MoM", Status: "positive"},
			{Title: "Conv Rate (%)", Value: "6.31%", Trend: "-0.5%", TrendText: "MoM", Status: "negative"},
			{Title: "AOV ($)", Value: "$141.5", Trend: "+2.1%", TrendText: "MoM", Status: "positive"},
		},
		Leaderboard: []LeaderboardEntry{
			{ID: "KTWADVANT", Name: "Maxwell Walker", Email: "maxwell.walker@advantech.com", Tier: TierExplorer, Clicks: 1280, Orders: 35, Revenue: 8500},
			{ID: "KUSOLVACE", Name: "Olivia Chen", Email: "olivia.chen@tech-solutions.com", Tier: TierBuilder, Clicks: 1150, Orders: 32, Revenue: 7800},
			{ID: "KDEIMULER", Name: "Liam Müller", Email: "liam.muller@industrie4.de", Tier: TierEnabler, Clicks: 980, Orders: 28, Revenue: 7200},
			{ID: "KFRDUBOIS", Name: "Sophia Dubois", Email: "sophia.dubois@automation-fr.com", Tier: TierBuilder, Clicks: 950, Orders: 25, Revenue: 6500},
			{ID: "KJPTANAKA", Name: "Kenji Tanaka", Email: "kenji.tanaka@iot-japan.co.jp", Tier: TierLeader, Clicks: 880, Orders: 22, Revenue: 6100},
			{ID: "KITROSSIT", Name: "Isabella Rossi", Email: "isabella.rossi@smart-italy.eu", Tier: TierEnabler, Clicks: 820, Orders: 21, Revenue: 5800},
			{ID: "KKRNOAHIM", Name: "Noah Kim", Email: "noah.kim@korean-tech.kr", Tier: TierBuilder, Clicks: 790, Orders: 20, Revenue: 5500},
			{ID: "KDESCHMIT", Name: "Ava Schmidt", Email: "ava.schmidt@automation-gmbh.de", Tier: TierBuilder, Clicks: 750, Orders: 18, Revenue: 5100},
			{ID: "KMXGARCIA", Name: "Lucas Garcia", Email: "lucas.garcia@industria-es.com", Tier: TierExplorer, Clicks: 710, Orders: 17, Revenue: 4800},
			{ID: "KCNMIAWAN", Name: "Mia Wang", Email: "mia.wang@smart-manufacturing.cn", Tier: TierEnabler, Clicks: 680, Orders: 15, Revenue: 4500},
		},
		Payouts: PayoutSection{
			PayoutDayMessage: "Payout Day: 5th of each month",
			History: []PayoutBatch{
				{
					Date:     "2025-08-05",
					Total:    15420.50,
					BELCount: 45,
					Details: []PayoutDetail{
						{PayoutID: "RP-000001", ReferralID: "KTWADVANT", BELName: "Maxwell Walker", Gross: 850.25, Fees: 17.01, Tax: 42.51, Net: 790.73, Paid: true, Status: "Success"},
						{PayoutID: "RP-000002", ReferralID: "KUSOLVACE", BELName: "Olivia Chen", Gross: 720.50, Fees: 14.41, Tax: 36.03, Net: 670.06, Paid: true, Status: "Success"},
						{PayoutID: "RP-000003", ReferralID: "KDEIMULER", BELName: "Liam Müller", Gross: 612.80, Fees: 12.26, Tax: 30.64, Net: 569.90, Paid: false, Status: "Failed"},
					},
				},
				{
					Date:     "2025-07-05",
					Total:    12350.75,
					BELCount: 38,
					Details: []PayoutDetail{
						{PayoutID: "RP-000004", ReferralID: "KUSOLVACE", BELName: "Olivia Chen", Gross: 720.50, Fees: 14.41, Tax: 36.03, Net: 670.06, Paid: true, Status: "Success"},
						{PayoutID: "RP-000005", ReferralID: "KFRDUBOIS", BELName: "Sophia Dubois", Gross: 580.30, Fees: 11.61, Tax: 29.02, Net: 539.67, Paid: true, Status: "Success"},
					},
				},
			},
		},
		Orders: []Order{
			{OrderDate: "2025-08-20", OrderNumber: "IMTW000234", ReferralID: "KTWADVANT", BELName: "Maxwell Walker", Amount: 1250.00, Currency: "USD", Status: "Completed"},
			{OrderDate: "2025-08-19", OrderNumber: "IMUS000233", ReferralID: "KUSOLVACE", BELName: "Olivia Chen", Amount: 650.50, Currency: "EUR", Status: "Processing"},
			{OrderDate: "2025-08-18", OrderNumber: "IMDE000232", ReferralID: "KDEIMULER", BELName: "Liam Müller", Amount: 745.75, Currency: "GBP", Status: "Processing"},
			{OrderDate: "2025-08-17", OrderNumber: "IMFR000231", ReferralID: "KFRDUBOIS", BELName: "Sophia Dubois", Amount: 1680.30, Currency: "EUR", Status: "Completed"},
			{OrderDate: "2025-08-16", OrderNumber: "IMJP000230", ReferralID: "KJPTANAKA", BELName: "Kenji Tanaka", Amount: 285000, Currency: "JPY", Status: "Processing"},
			{OrderDate: "2025-08-13", OrderNumber: "IMMX000227", ReferralID: "KMXLOPEZZ", BELName: "Isabella López", Amount: 2750.00, Currency: "USD", Status: "Completed"},
			{OrderDate: "2025-08-12", OrderNumber: "IMMX000226", ReferralID: "KMXGARCIA", BELName: "Lucas Garcia", Amount: 1640.00, Currency: "USD", Status: "Canceled"},
			{OrderDate: "2025-08-11", OrderNumber: "IMCN000225", ReferralID: "KCNMIAWAN", BELName: "Mia Wang", Amount: 4580.80, Currency: "USD", Status: "Completed"},
			{OrderDate: "2025-08-10", OrderNumber: "IMTW000224", ReferralID: "KTWADVANT", BELName: "Maxwell Walker", Amount: 2150.40, Currency: "USD", Status: "Processing"},
			{OrderDate: "2025-08-09", OrderNumber: "IMUS000223", ReferralID: "KUSOLVACE", BELName: "Olivia Chen", Amount: 870.25, Currency: "EUR", Status: "Completed"},
			{OrderDate: "2025-08-08", OrderNumber: "IMDE000222", ReferralID: "KDEIMULER", BELName: "Liam Müller", Amount: 1185.60, Currency: "GBP", Status: "Processing"},
			{OrderDate: "2025-08-06", OrderNumber: "IMJP000220", ReferralID: "KJPTANAKA", BELName: "Kenji Tanaka", Amount: 185000, Currency: "JPY", Status: "Canceled"},
		},
		Assets: []Asset{
			{UploadDate: "2025-08-15", Title: "ADAM-6017 Product Guide", Subtitle: "Complete setup and configuration guide for ADAM-6017 series industrial modules", Category: "IoTMart Campaign", PageLink: "https://example.com/products/adam-6017"},
			{UploadDate: "2025-08-10", Title: "IoT Solutions Catalog", Subtitle: "2025 Product Catalog with comprehensive IoT solutions and pricing", Category: "Advantech Resource Website", PageLink: "https://example.com/catalog/2025"},
		},
		Tickets: []Ticket{
			{
				TicketNumber: "TICK-2025-001", ReferralID: "KTWADVANT", BELName: "Maxwell Walker",
				Subject: "Payment delay inquiry", Status: StatusOpen, Created: "2025-08-28",
				Message: "My July payout shows as processed but has not arrived in my account yet.",
			},
			{
				TicketNumber: "TICK-2025-002", ReferralID: "KUSOLVACE", BELName: "Olivia Chen",
				Subject: "Tier advancement criteria", Status: StatusResolved, Created: "2025-08-25",
				Message: "What are the specific criteria to upgrade from Builder to Enabler level?",
				Replies: []Reply{
					{Time: "2025-08-26 09:15", Text: "To upgrade to Enabler level, you need 50+ orders and $15,000+ in total revenue. You're currently at 42 orders and $12,800 revenue. Keep up the great work!"},
				},
			},
			{
				TicketNumber: "TICK-2025-003", ReferralID: "KDEIMULER", BELName: "Liam Müller",
				Subject: "Banking information update", Status: StatusReplied, Created: "2025-08-22",
				Message: "I need to update my banking information for future payouts. What documents are required?",
				Replies: []Reply{
					{Time: "2025-08-23 14:02", Text: "Please upload a recent bank statement and a copy of your ID through the secure form."},
				},
			},
			{
				TicketNumber: "TICK-2025-004", ReferralID: "KFRDUBOIS", BELName: "Sophia Dubois",
				Subject: "Broken tracking link", Status: StatusClosed, Created: "2025-08-12",
				Message: "The tracking link for the WISE-4012E campaign returns a 404.",
				Replies: []Reply{
					{Time: "2025-08-13 10:30", Text: "The campaign link has been regenerated and verified."},
					{Time: "2025-08-14 08:00", Text: "Case closed by admin."},
				},
			},
		},
		Announcements: []Announcement{
			{Created: "2025-08-26", Category: "Important", Title: "Urgent System Alert", Body: "Critical security update required", Link: "https://example.com/security-update"},
			{Created: "2025-08-25", Category: "System", Title: "Platform Maintenance", Body: "Scheduled maintenance on September 1st", Link: "https://example.com/maintenance"},
			{Created: "2025-08-20", Category: "Campaign Launch", Title: "New ADAM Series Available", Body: "Latest ADAM series now available for promotion", Link: "https://example.com/adam-series"},
			{Created: "2025-08-15", Category: "Payout Reminder", Title: "Monthly Payout Schedule", Body: "August payout processing completed", Link: "https://example.com/payout-info"},
		},
	}
}
