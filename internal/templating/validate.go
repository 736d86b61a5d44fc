package templating

// Validate checks a template body against its declarations and the effective
// registry. It returns a finding per problem rather than stopping at the
// first, so an author sees everything wrong in one pass; an empty result
// means the template is valid.
//
// Two failure classes are reported, in this order:
//  1. a placeholder used in the body that neither the system set nor the
//     declarations define, once per distinct token in order of first use;
//  2. a declaration marked required whose id never appears in the body, in
//     declaration order.
func Validate(body string, declarations []PlaceholderDeclaration, registry Registry) []string {
	seen := make(map[string]struct{})
	var used []string
	for _, m := range Placeholders(body) {
		if _, ok := seen[m.Token]; ok {
			continue
		}
		seen[m.Token] = struct{}{}
		used = append(used, m.Token)
	}

	var findings []string
	for _, token := range used {
		if !registry.IsDefined(token) {
			findings = append(findings, "Undefined variable: "+token)
		}
	}
	for _, decl := range declarations {
		if !decl.Required {
			continue
		}
		if _, ok := seen[decl.ID]; !ok {
			findings = append(findings, "Required variable not used: "+decl.ID)
		}
	}
	return findings
}
