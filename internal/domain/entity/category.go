package entity

// TransactionType distinguishes money coming in from money going out
type TransactionType string

// Transaction types
const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// FilterAll is the query value that disables a type or category filter
const FilterAll = "all"

// Allowed categories per transaction type. Income and expense sets are
// disjoint except for the shared "other" fallback.
var (
	expenseCategories = []string{
		"food", "transport", "entertainment", "bills",
		"shopping", "health", "education", "other",
	}
	incomeCategories = []string{
		"salary", "freelance", "investment", "gift", "other",
	}

	categoriesByType = map[TransactionType][]string{
		TypeIncome:  incomeCategories,
		TypeExpense: expenseCategories,
	}
)

// DefaultCategory is used when a transaction is created implicitly, e.g. an
// account top-up recorded as income.
const DefaultCategory = "other"

// IsValidType reports whether the given string is a known transaction type
func IsValidType(transactionType string) bool {
	return transactionType == string(TypeIncome) || transactionType == string(TypeExpense)
}

// IsValidCategory reports whether the category belongs to the allowed set for
// the given transaction type
func IsValidCategory(transactionType TransactionType, category string) bool {
	for _, allowed := range categoriesByType[transactionType] {
		if category == allowed {
			return true
		}
	}
	return false
}

// CategoriesFor returns a copy of the allowed category set for a type
func CategoriesFor(transactionType TransactionType) []string {
	allowed := categoriesByType[transactionType]
	out := make([]string, len(allowed))
	copy(out, allowed)
	return out
}

// Signed returns the balance delta in cents a transaction of this type and
// amount contributes: positive for income, negative for expense.
func (t TransactionType) Signed(amountCents int64) int64 {
	if t == TypeExpense {
		return -amountCents
	}
	return amountCents
}
