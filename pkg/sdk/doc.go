// Package sdk provides a typed Go client for the GrindChain task API.
//
// The client wraps net/http with one method per endpoint, bearer-token
// authentication, response schema validation, and automatic retry via
// fortify.
//
// Usage:
//
//	c := sdk.NewClient("https://api.grindchain.dev",
//		sdk.WithTokenSource(oauth2.StaticTokenSource(tok)))
//
//	tasks, _ := c.ListTasks(ctx)
//	fmt.Println(len(tasks))
package sdk
