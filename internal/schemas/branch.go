// Package schemas declares the per-operation request schemas. Field order
// matters: violations are reported for the first failing field.
package schemas

import "employee-directory/pkg/schema"

const (
	phoneRuleMessage = "Phone number must be in the format ###-###-####"
	emailRuleMessage = "Email must be a valid email address"
)

var PostBranch = schema.Schema{
	Name: "postBranch",
	Fields: []schema.Field{
		{Name: "name", Label: "Name", Kind: schema.String, Required: true},
		{Name: "address", Label: "Address", Kind: schema.String, Required: true},
		{Name: "phone", Label: "Phone", Kind: schema.String, Required: true, Rules: "us_phone", RuleMessage: phoneRuleMessage},
		{Name: "createdAt", Label: "Created at", Kind: schema.Date},
	},
}

var GetBranchByID = schema.Schema{
	Name: "getBranchById",
	Fields: []schema.Field{
		{Name: "id", Label: "ID", Kind: schema.String, Required: true},
	},
}

var PutBranch = schema.Schema{
	Name: "putBranch",
	Fields: []schema.Field{
		{Name: "id", Label: "ID", Kind: schema.String, Required: true},
		{Name: "name", Label: "Name", Kind: schema.String},
		{Name: "address", Label: "Address", Kind: schema.String},
		{Name: "phone", Label: "Phone", Kind: schema.String, Rules: "us_phone", RuleMessage: phoneRuleMessage},
		{Name: "updatedAt", Label: "Updated at", Kind: schema.Date},
	},
}

var DeleteBranch = schema.Schema{
	Name: "deleteBranch",
	Fields: []schema.Field{
		{Name: "id", Label: "ID", Kind: schema.String, Required: true},
	},
}
