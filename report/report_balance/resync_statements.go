package report_balance

type resyncStatement struct {
	Name string
	SQL  string
}

// resyncStatements lists the repair steps in execution order.
func resyncStatements() []resyncStatement {
	return []resyncStatement{
		{
			Name: "rewriting balances from the posting log",
			SQL: `
				update accounts
				set balance = coalesce((
					select sum(t.amount)
					from transactions t
					where t.account_id = accounts.id
				), 0)
			`,
		},
	}
}
