// models/service_package.go
package models

// Template kinds
const (
	TemplateKindPackage = "package"
	TemplateKindGeneral = "general"
)

// ServicePackage is a sellable offering with its canned confirmation email.
// Subject and Body may contain the {{name}}, {{amount}} and {{tenure}}
// placeholders.
type ServicePackage struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// ServicePackages lists the offerings a submission may reference by name.
var ServicePackages = []ServicePackage{
	{
		ID:      "seo",
		Name:    "Our SEO Package",
		Kind:    TemplateKindPackage,
		Subject: "Our SEO Package",
		Body: `<p>Hi {{name}},</p>

<p>We are pleased to confirm that your subscription with <strong>GlobalB2BMart.com</strong> has been successfully activated. As per our records, you have enrolled for the <strong>S.E.O Package</strong>, effective from <strong>{{tenure}}</strong>, with a tenure of <strong>1yr</strong>. Your account has now been initiated in our system, and our onboarding team will begin setting up your company profile, uploading your product catalogue, and enabling all features included in your selected package to ensure maximum visibility and complete business support throughout your subscription period.</p>

<p>For any assistance during your tenure, you may contact our support team at <strong>011-41029790</strong> or write to us at <strong>webwavebusinesspvtltd@gmail.com</strong>. We are committed to providing prompt and reliable service at all times.</p>

<p>For future payments, kindly ensure that all transactions are made only to the official company bank account, payment gateway, or UPI ID shared below. Any payment made to any other bank account, number, or UPI ID will not be considered valid, and GlobalB2BMart.com / Webwave Business Pvt. Ltd. will not be liable for such transactions. Our official payment details are as follows:</p>

<p><strong>Axis Bank</strong><br/>
Account Name: Webwave Business Pvt Ltd<br/>
Account Number: 923020060598477<br/>
IFSC: UTIB0004098<br/>
Branch: Ajay Enclave<br/>
Address: Ground Floor, Property No.26/1, Ajay Enclave, New Ajanta Cinema, New Delhi – 110026</p>

<p>Thank you for choosing <strong>GlobalB2BMart.com</strong> as your trusted B2B growth partner. We look forward to supporting your business and helping you connect with verified global buyers effectively.</p>

<p>Regards,<br/>Team</p>`,
	},
	{
		ID:      "standard",
		Name:    "Our Standard Package",
		Kind:    TemplateKindPackage,
		Subject: "Our Standard Package",
		Body: `<p>Hi {{name}},</p>

<p>We are pleased to confirm that your subscription with <strong>GlobalB2BMart.com</strong> has been successfully activated. As per our records, you have enrolled for the <strong>Standard Package</strong>, effective from <strong>{{tenure}}</strong>, with a tenure of <strong>1yr</strong>. Your account has now been initiated in our system, and our onboarding team will begin setting up your company profile, uploading your product catalogue, and enabling all features included in your selected package to ensure maximum visibility and complete business support throughout your subscription period.</p>

<p>The total payable amount for your plan is: <strong>{{amount}}</strong>. If you have any questions or need clarification, feel free to reach out.</p>

<p>For any assistance during your tenure, you may contact our support team at <strong>011-41029790</strong> or write to us at <strong>webwavebusinesspvtltd@gmail.com</strong>. We are committed to providing prompt and reliable service at all times.</p>

<p>For future payments, kindly ensure that all transactions are made only to the official company bank account, payment gateway, or UPI ID shared below. Any payment made to any other bank account, number, or UPI ID will not be considered valid, and GlobalB2BMart.com / Webwave Business Pvt. Ltd. will not be liable for such transactions. Our official payment details are as follows:</p>

<p><strong>Axis Bank</strong><br/>
Account Name: Webwave Business Pvt Ltd<br/>
Account Number: 923020060598477<br/>
IFSC: UTIB0004098<br/>
Branch: Ajay Enclave<br/>
Address: Ground Floor, Property No.26/1, Ajay Enclave, New Ajanta Cinema, New Delhi – 110026</p>

<p>Thank you for choosing <strong>GlobalB2BMart.com</strong> as your trusted B2B growth partner. We look forward to supporting your business and helping you connect with verified global buyers effectively.</p>

<p>Regards,<br/>Team</p>`,
	},
	{
		ID:      "advanced",
		Name:    "Our Advanced Package",
		Kind:    TemplateKindPackage,
		Subject: "Our Advanced Package",
		Body: `<p>Hi {{name}},</p>

<p>We are pleased to confirm that your subscription with <strong>GlobalB2BMart.com</strong> has been successfully activated. As per our records, you have enrolled for the <strong>Advanced Package</strong>, effective from <strong>{{tenure}}</strong>, with a tenure of <strong>2yr</strong>. Your account has now been initiated in our system, and our onboarding team will begin setting up your company profile, uploading your product catalogue, and enabling all features included in your selected package to ensure maximum visibility and complete business support throughout your subscription period.</p>

<p>For any assistance during your tenure, you may contact our support team at <strong>011-41029790</strong> or write to us at <strong>webwavebusinesspvtltd@gmail.com</strong>. We are committed to providing prompt and reliable service at all times.</p>

<p>For future payments, kindly ensure that all transactions are made only to the official company bank account, payment gateway, or UPI ID shared below. Any payment made to any other bank account, number, or UPI ID will not be considered valid, and GlobalB2BMart.com / Webwave Business Pvt. Ltd. will not be liable for such transactions. Our official payment details are as follows:</p>

<p><strong>Axis Bank</strong><br/>
Account Name: Webwave Business Pvt Ltd<br/>
Account Number: 923020060598477<br/>
IFSC: UTIB0004098<br/>
Branch: Ajay Enclave<br/>
Address: Ground Floor, Property No.26/1, Ajay Enclave, New Ajanta Cinema, New Delhi – 110026</p>

<p>Thank you for choosing <strong>GlobalB2BMart.com</strong> as your trusted B2B growth partner. We look forward to supporting your business and helping you connect with verified global buyers effectively.</p>

<p>Regards,<br/>Team</p>`,
	},
	{
		ID:      "googlevirtualtool",
		Name:    "Google Virtual Tool",
		Kind:    TemplateKindPackage,
		Subject: "Google Virtual Tool",
		Body: `<p>Hi {{name}},</p>

<p>We are pleased to confirm that your subscription with <strong>GlobalB2BMart.com</strong> has been successfully activated. As per our records, you have enrolled for the <strong>Google Virtual Tool</strong>, effective from <strong>{{tenure}}</strong>, with a tenure of <strong>3yr</strong>. Your account has now been initiated in our system, and our onboarding team will begin setting up your company profile, uploading your product catalogue, and enabling all features included in your selected package to ensure maximum visibility and complete business support throughout your subscription period.</p>

<p>For any assistance during your tenure, you may contact our support team at <strong>011-41029790</strong> or write to us at <strong>webwavebusinesspvtltd@gmail.com</strong>. We are committed to providing prompt and reliable service at all times.</p>

<p>For future payments, kindly ensure that all transactions are made only to the official company bank account, payment gateway, or UPI ID shared below. Any payment made to any other bank account, number, or UPI ID will not be considered valid, and GlobalB2BMart.com / Webwave Business Pvt. Ltd. will not be liable for such transactions. Our official payment details are as follows:</p>

<p><strong>Axis Bank</strong><br/>
Account Name: Webwave Business Pvt Ltd<br/>
Account Number: 923020060598477<br/>
IFSC: UTIB0004098<br/>
Branch: Ajay Enclave<br/>
Address: Ground Floor, Property No.26/1, Ajay Enclave, New Ajanta Cinema, New Delhi – 110026</p>

<p>Thank you for choosing <strong>GlobalB2BMart.com</strong> as your trusted B2B growth partner. We look forward to supporting your business and helping you connect with verified global buyers effectively.</p>

<p>Regards,<br/>Team</p>`,
	},
}

// GeneralTemplates are notification emails not tied to a package.
var GeneralTemplates = []ServicePackage{
	{
		ID:      "welcome",
		Name:    "Welcome Client",
		Kind:    TemplateKindGeneral,
		Subject: "Welcome to Our Service",
		Body:    `<p>Hi {{name}},</p><p>Welcome to our service. We are excited to work with you.</p><p>Regards,<br/>Team</p>`,
	},
	{
		ID:      "invoice",
		Name:    "Invoice Notification",
		Kind:    TemplateKindGeneral,
		Subject: "Invoice for Your Recent Service",
		Body:    `<p>Hi {{name}},</p><p>Please find attached the invoice for the recent service. Amount: {{amount}}</p><p>Regards,<br/>Accounting</p>`,
	},
	{
		ID:      "followup",
		Name:    "Follow Up",
		Kind:    TemplateKindGeneral,
		Subject: "Quick Follow Up",
		Body:    `<p>Hi {{name}},</p><p>Just following up on our previous conversation. Let me know if you have any questions.</p><p>Thanks,<br/>Team</p>`,
	},
}

// FindTemplate looks a template up by id across packages and general templates.
func FindTemplate(id string) (ServicePackage, bool) {
	for _, p := range ServicePackages {
		if p.ID == id {
			return p, true
		}
	}
	for _, t := range GeneralTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return ServicePackage{}, false
}

// IsServicePackageName reports whether name is the display name of a package.
func IsServicePackageName(name string) bool {
	for _, p := range ServicePackages {
		if p.Name == name {
			return true
		}
	}
	return false
}
