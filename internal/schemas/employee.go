package schemas

import "employee-directory/pkg/schema"

var PostEmployee = schema.Schema{
	Name: "postEmployee",
	Fields: []schema.Field{
		{Name: "name", Label: "Name", Kind: schema.String, Required: true},
		{Name: "position", Label: "Position", Kind: schema.String, Required: true},
		{Name: "department", Label: "Department", Kind: schema.String, Required: true},
		{Name: "email", Label: "Email", Kind: schema.String, Required: true, Rules: "email", RuleMessage: emailRuleMessage},
		{Name: "phone", Label: "Phone", Kind: schema.String, Required: true, Rules: "us_phone", RuleMessage: phoneRuleMessage},
		{Name: "branchId", Label: "Branch ID", Kind: schema.String, Required: true},
		{Name: "createdAt", Label: "Created at", Kind: schema.Date},
	},
}

var GetEmployeeByID = schema.Schema{
	Name: "getEmployeeById",
	Fields: []schema.Field{
		{Name: "id", Label: "ID", Kind: schema.String, Required: true},
	},
}

var PutEmployee = schema.Schema{
	Name: "putEmployee",
	Fields: []schema.Field{
		{Name: "id", Label: "ID", Kind: schema.String, Required: true},
		{Name: "name", Label: "Name", Kind: schema.String},
		{Name: "position", Label: "Position", Kind: schema.String},
		{Name: "department", Label: "Department", Kind: schema.String},
		{Name: "email", Label: "Email", Kind: schema.String, Rules: "email", RuleMessage: emailRuleMessage},
		{Name: "phone", Label: "Phone", Kind: schema.String, Rules: "us_phone", RuleMessage: phoneRuleMessage},
		{Name: "branchId", Label: "Branch ID", Kind: schema.String},
		{Name: "updatedAt", Label: "Updated at", Kind: schema.Date},
	},
}

var DeleteEmployee = schema.Schema{
	Name: "deleteEmployee",
	Fields: []schema.Field{
		{Name: "id", Label: "ID", Kind: schema.String, Required: true},
	},
}

var GetEmployeesByBranch = schema.Schema{
	Name: "getEmployeesByBranch",
	Fields: []schema.Field{
		{Name: "branchId", Label: "Branch ID", Kind: schema.String, Required: true},
	},
}

var GetEmployeesByDepartment = schema.Schema{
	Name: "getEmployeesByDepartment",
	Fields: []schema.Field{
		{Name: "department", Label: "Department", Kind: schema.String, Required: true},
	},
}
