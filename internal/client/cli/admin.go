package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/presale/internal/client/client"
	"github.com/dmitrijs2005/presale/internal/common"
)

// Admin prints the platform summary. The server decides who may see it.
func (a *App) Admin(ctx context.Context) error {
	d, err := a.adminService.Dashboard(ctx)
	if err != nil {
		switch {
		case a.reportAuth(err):
		case errors.Is(err, common.ErrorForbidden):
			a.println("Admin access required")
		default:
			a.println(client.Message(err, "Failed to load dashboard"))
		}
		return err
	}

	a.printf("Users: %d   Purchases: %d   Funds: %s   Tokens: %s\n",
		d.TotalUsers, d.TotalPurchases, formatUSD(d.TotalFunds), formatTokens(d.TotalTokens))

	a.println("\nRecent users")
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "EMAIL\tNAME\tJOINED")
	for _, u := range d.RecentUsers {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", u.Email, u.FullName, u.CreatedAt.Format("2006-01-02"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	a.println("\nRecent purchases")
	tw = tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tUSER\tAMOUNT\tUSD\tTOKENS\tSTATUS")
	for _, p := range d.RecentPurchases {
		fmt.Fprintf(tw, "%s\t%s\t%s %s\t%s\t%s\t%s\n",
			p.CreatedAt.Format("2006-01-02 15:04"), p.UserEmail, p.AmountCrypto, p.Currency,
			formatUSD(p.AmountUSD), formatTokens(p.TokenQuantity), p.Status)
	}
	return tw.Flush()
}
