package catalog

import "sync"

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in eight-pillar financial literacy curriculum.
// It is built once on first use and shared by all callers.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(defaultPillars())
		if err != nil {
			panic("catalog: invalid built-in catalog: " + err.Error())
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func defaultPillars() []Pillar {
	return []Pillar{
		{
			ID:          1,
			Title:       "Budgeting Basics",
			Description: "Track where your money goes and give every dollar a job.",
			Icon:        "wallet",
			Path:        "/pillars/budgeting",
			Difficulty:  DifficultyBeginner,
			ReadMinutes: 8,
			NextPillar:  intPtr(2),
			Sections: []Section{
				{ID: "why-budget", Title: "Why Budget?", Body: "A budget is a plan for your money made **before** you spend it.\n\nWithout one, small leaks add up: subscriptions you forgot, impulse purchases, fees."},
				{ID: "50-30-20", Title: "The 50/30/20 Rule", Body: "Split take-home pay into three buckets:\n\n| Bucket | Share |\n|---|---|\n| Needs | 50% |\n| Wants | 30% |\n| Savings & debt | 20% |\n"},
				{ID: "tracking", Title: "Tracking Spending", Body: "Review every transaction for one month. Categorize, then compare against your plan."},
				{ID: "adjusting", Title: "Adjusting Over Time", Body: "Budgets change with income and life events. Revisit yours monthly."},
			},
			Stats: []Stat{
				{Label: "Americans who use a budget", Value: "about 1 in 3"},
				{Label: "Suggested savings share", Value: "20%"},
			},
			Related: []Link{
				{Title: "CFPB budgeting worksheet", URL: "https://www.consumerfinance.gov/consumer-tools/budgeting/"},
			},
		},
		{
			ID:           2,
			Title:        "Emergency Fund",
			Description:  "Build a cash cushion so surprises do not become debt.",
			Icon:         "shield",
			Path:         "/pillars/emergency-fund",
			Difficulty:   DifficultyBeginner,
			ReadMinutes:  6,
			Prerequisite: intPtr(1),
			NextPillar:   intPtr(3),
			Sections: []Section{
				{ID: "what-is-it", Title: "What Is an Emergency Fund?", Body: "Cash set aside **only** for unexpected, necessary expenses: job loss, medical bills, urgent repairs."},
				{ID: "how-much", Title: "How Much Is Enough?", Body: "Start with a starter goal of $1,000, then grow toward 3 to 6 months of essential expenses."},
				{ID: "where-to-keep", Title: "Where to Keep It", Body: "A high-yield savings account keeps the money liquid, insured and separate from daily spending."},
			},
			Stats: []Stat{
				{Label: "Target coverage", Value: "3-6 months of expenses"},
				{Label: "Starter goal", Value: "$1,000"},
			},
		},
		{
			ID:           3,
			Title:        "Debt Management",
			Description:  "Understand interest, prioritize payoff and avoid debt traps.",
			Icon:         "credit-card",
			Path:         "/pillars/debt",
			Difficulty:   DifficultyIntermediate,
			ReadMinutes:  10,
			Prerequisite: intPtr(2),
			NextPillar:   intPtr(4),
			Sections: []Section{
				{ID: "good-vs-bad", Title: "Good Debt vs. Bad Debt", Body: "Debt that finances an appreciating asset or higher income can be useful. High-interest consumer debt rarely is."},
				{ID: "avalanche", Title: "The Avalanche Method", Body: "Pay minimums on everything, then send extra money to the **highest interest rate** first. Cheapest overall."},
				{ID: "snowball", Title: "The Snowball Method", Body: "Pay off the **smallest balance** first for quick wins that keep you motivated."},
				{ID: "interest-math", Title: "How Interest Compounds Against You", Body: "Monthly interest is roughly:\n\n```\ninterest = balance * (APR / 12)\n```\n\nA $5,000 balance at 24% APR costs about $100 a month before principal."},
			},
			Stats: []Stat{
				{Label: "Average credit card APR", Value: "over 20%"},
			},
			Related: []Link{
				{Title: "Federal Student Aid repayment plans", URL: "https://studentaid.gov/manage-loans/repayment"},
			},
		},
		{
			ID:           4,
			Title:        "Understanding Credit",
			Description:  "Learn how credit scores work and how to build strong credit.",
			Icon:         "gauge",
			Path:         "/pillars/credit",
			Difficulty:   DifficultyIntermediate,
			ReadMinutes:  7,
			Prerequisite: intPtr(3),
			NextPillar:   intPtr(5),
			Sections: []Section{
				{ID: "score-factors", Title: "What Makes Up a Score", Body: "Payment history (35%), amounts owed (30%), length of history (15%), new credit (10%), credit mix (10%)."},
				{ID: "reports", Title: "Reading Your Credit Report", Body: "You can request free reports from each bureau. Dispute errors promptly."},
				{ID: "building", Title: "Building Credit from Scratch", Body: "Secured cards and credit-builder loans establish history when paid on time."},
			},
			Stats: []Stat{
				{Label: "Score range", Value: "300-850"},
				{Label: "Weight of payment history", Value: "35%"},
			},
			Related: []Link{
				{Title: "AnnualCreditReport.com", URL: "https://www.annualcreditreport.com"},
			},
		},
		{
			ID:           5,
			Title:        "Saving & Investing",
			Description:  "Put compound growth to work with diversified, low-cost investing.",
			Icon:         "trending-up",
			Path:         "/pillars/investing",
			Difficulty:   DifficultyIntermediate,
			ReadMinutes:  12,
			Prerequisite: intPtr(2),
			NextPillar:   intPtr(6),
			Sections: []Section{
				{ID: "compounding", Title: "The Power of Compounding", Body: "Returns earn returns. At 7% a year, money roughly doubles every ten years."},
				{ID: "asset-classes", Title: "Stocks, Bonds and Cash", Body: "Stocks offer growth with volatility, bonds offer income with lower risk, cash offers stability."},
				{ID: "index-funds", Title: "Index Funds", Body: "Broad, low-fee funds that track a market index. A simple core for most portfolios."},
				{ID: "risk", Title: "Risk and Time Horizon", Body: "The longer you can leave money invested, the more short-term volatility you can tolerate."},
			},
			Stats: []Stat{
				{Label: "Rule of 72 at 7%", Value: "~10 years to double"},
			},
		},
		{
			ID:           6,
			Title:        "Retirement Planning",
			Description:  "Use tax-advantaged accounts and employer matches to retire on your terms.",
			Icon:         "sunset",
			Path:         "/pillars/retirement",
			Difficulty:   DifficultyAdvanced,
			ReadMinutes:  11,
			Prerequisite: intPtr(5),
			NextPillar:   intPtr(7),
			Sections: []Section{
				{ID: "accounts", Title: "401(k), IRA and Roth", Body: "Traditional accounts defer tax until withdrawal; Roth accounts are funded with after-tax money and grow tax-free."},
				{ID: "match", Title: "Never Skip the Match", Body: "An employer match is an instant return on your contribution. Contribute at least enough to get all of it."},
				{ID: "how-much", Title: "How Much Will You Need?", Body: "A common rule of thumb is 25x your expected annual spending in retirement."},
			},
			Stats: []Stat{
				{Label: "Savings multiple rule of thumb", Value: "25x annual spending"},
			},
		},
		{
			ID:           7,
			Title:        "Insurance & Protection",
			Description:  "Protect your income, health and assets against large losses.",
			Icon:         "umbrella",
			Path:         "/pillars/insurance",
			Difficulty:   DifficultyIntermediate,
			ReadMinutes:  9,
			Prerequisite: intPtr(2),
			NextPillar:   intPtr(8),
			Sections: []Section{
				{ID: "health", Title: "Health Insurance", Body: "Compare premiums, deductibles and out-of-pocket maximums, not just the monthly price."},
				{ID: "life", Title: "Life Insurance", Body: "Term life covers dependents for a fixed period at low cost."},
				{ID: "disability", Title: "Disability Insurance", Body: "Your ability to earn is often your largest asset. Disability coverage replaces part of your income."},
			},
		},
		{
			ID:           8,
			Title:        "Taxes & Wealth Building",
			Description:  "Keep more of what you earn and grow long-term net worth.",
			Icon:         "landmark",
			Path:         "/pillars/taxes-wealth",
			Difficulty:   DifficultyAdvanced,
			ReadMinutes:  13,
			Prerequisite: intPtr(6),
			Sections: []Section{
				{ID: "brackets", Title: "How Tax Brackets Work", Body: "Brackets are marginal: only the income **inside** a bracket is taxed at that rate."},
				{ID: "deductions", Title: "Deductions and Credits", Body: "Deductions lower taxable income; credits lower the tax bill dollar for dollar."},
				{ID: "net-worth", Title: "Tracking Net Worth", Body: "Net worth is assets minus liabilities. Track it yearly to see the whole picture."},
			},
			Stats: []Stat{
				{Label: "Net worth formula", Value: "assets - liabilities"},
			},
			Related: []Link{
				{Title: "IRS Free File", URL: "https://www.irs.gov/filing/free-file-do-your-federal-taxes-for-free"},
			},
		},
	}
}
