package messages

var en = map[string]string{
	"app.title":          "SecureBank AI",
	"app.subtitle":       "Term Deposit Subscription Prediction",
	"nav.predict":        "🔮 AI Prediction",
	"nav.dashboard":      "📊 Analytics Dashboard",
	"nav.insights":       "📈 Data Insights",
	"nav.modelinfo":      "ℹ️ Model Info",
	"common.na":          "N/A",
	"common.error":       "An Error Occurred",
	"common.placeholder": "Placeholder value, not yet served by the backend",

	DashboardTargetFailed: "Failed to fetch the target distribution",
	DashboardJobFailed:    "Failed to fetch the success rate per job",
	DashboardGeneric:      "An error occurred while loading the dashboard data.",
	InsightsAgeFailed:     "Failed to fetch the age distribution.",
	InsightsSampleFailed:  "Failed to fetch the balance/duration sample.",
	InsightsGeneric:       "An error occurred while loading the insights data.",
	ModelInfoFailed:       "Failed to fetch the model information.",
	ModelInfoGeneric:      "An error occurred while loading the model information.",
	PredictHTTPStatus:     "HTTP error! Status: %d",
	PredictGeneric:        "An unknown error occurred.",
	PredictRateLimit:      "Too many requests. Try again in %d seconds.",
	PredictInvalid:        "Invalid input.",

	"predict.form.title":         "📝 Customer Data",
	"predict.form.submit":        "🚀 Analyse Customer Potential",
	"predict.loading":            "AI is analysing...",
	"predict.result.title":       "Prediction Result:",
	"predict.result.subscribe":   "Will Subscribe to a Term Deposit:",
	"predict.result.yes":         "YES",
	"predict.result.no":          "NO",
	"predict.result.probability": "Probability of 'Yes':",
	"predict.chart.yes":          "Probability YES",
	"predict.chart.no":           "Probability NO",

	"predict.rec.yes.title":         "🎯 High Priority Customer",
	"predict.rec.yes.1":             "🔥 High Priority: Put on the main priority list",
	"predict.rec.yes.2":             "📞 Quick Follow-up: Contact within 24-48 hours",
	"predict.rec.yes.3":             "💎 Premium Offer: Offer a special rate or exclusive benefits",
	"predict.rec.yes.4":             "📅 Schedule a Meeting: Arrange a personal meeting with a relationship manager",
	"predict.rec.yes.outlook.title": "📈 Projected Outcome",
	"predict.rec.yes.outlook.1":     "💰 Revenue Potential: High",
	"predict.rec.yes.outlook.2":     "⚡ Conversion Speed: Fast",
	"predict.rec.yes.outlook.3":     "🤝 Relationship Value: Long term",
	"predict.rec.no.title":          "⚠️ Customer Needs Nurturing",
	"predict.rec.no.1":              "🎯 Relationship Building: Focus on long-term relationship development",
	"predict.rec.no.2":              "📧 Email Marketing: Send product information regularly",
	"predict.rec.no.3":              "🎁 Alternative Products: Offer better suited products",
	"predict.rec.no.4":              "📅 Future Review: Re-evaluate in 3-6 months",
	"predict.rec.no.alt.title":      "🔄 Alternative Approach",
	"predict.rec.no.alt.1":          "💳 Savings Account: Focus on savings products",
	"predict.rec.no.alt.2":          "🏠 Mortgage: Prioritise property loan offers",
	"predict.rec.no.alt.3":          "💎 Investment: Consider investment products",
	"predict.rec.no.alt.4":          "📱 Digital Banking: Offer digital services",

	"field.age":       "Age",
	"field.job":       "Job",
	"field.marital":   "Marital Status",
	"field.education": "Education",
	"field.balance":   "Account Balance (€)",
	"field.default":   "Credit in Default",
	"field.housing":   "Housing Loan",
	"field.loan":      "Personal Loan",
	"field.contact":   "Contact Method",
	"field.month":     "Month",
	"field.duration":  "Call Duration (seconds)",
	"field.campaign":  "Contacts This Campaign",
	"field.pdays":     "Days Since Last Contact (-1 = never)",
	"field.previous":  "Contacts in Previous Campaigns",
	"field.poutcome":  "Previous Campaign Outcome",

	"option.job.admin.":          "Administration",
	"option.job.blue-collar":     "Blue-collar Worker",
	"option.job.entrepreneur":    "Entrepreneur",
	"option.job.housemaid":       "Housemaid",
	"option.job.management":      "Management",
	"option.job.retired":         "Retired",
	"option.job.self-employed":   "Self-employed",
	"option.job.services":        "Services",
	"option.job.student":         "Student",
	"option.job.technician":      "Technician",
	"option.job.unemployed":      "Unemployed",
	"option.job.unknown":         "Unknown",
	"option.marital.married":     "Married",
	"option.marital.single":      "Single",
	"option.marital.divorced":    "Divorced",
	"option.education.primary":   "Primary",
	"option.education.secondary": "Secondary",
	"option.education.tertiary":  "Tertiary",
	"option.education.unknown":   "Unknown",
	"option.yesno.no":            "No",
	"option.yesno.yes":           "Yes",
	"option.contact.cellular":    "Cellular",
	"option.contact.telephone":   "Telephone",
	"option.contact.unknown":     "Unknown",
	"option.poutcome.failure":    "Failure",
	"option.poutcome.other":      "Other",
	"option.poutcome.success":    "Success",
	"option.poutcome.unknown":    "Unknown",
	"option.month.jan":           "January",
	"option.month.feb":           "February",
	"option.month.mar":           "March",
	"option.month.apr":           "April",
	"option.month.may":           "May",
	"option.month.jun":           "June",
	"option.month.jul":           "July",
	"option.month.aug":           "August",
	"option.month.sep":           "September",
	"option.month.oct":           "October",
	"option.month.nov":           "November",
	"option.month.dec":           "December",

	"dashboard.loading":         "Loading dashboard data...",
	"dashboard.kpi.total":       "Total Customers",
	"dashboard.kpi.success":     "Success Rate",
	"dashboard.kpi.duration":    "Average Call Duration",
	"dashboard.kpi.age":         "Average Customer Age",
	"dashboard.chart.target":    "🎯 Customer Target Distribution (Deposit)",
	"dashboard.chart.job":       "💼 Success Rate by Job Category",
	"dashboard.chart.job.axis":  "Success Rate (%)",
	"dashboard.chart.job.label": "Job",

	"insights.loading":         "Loading insights data...",
	"insights.chart.age":       "👥 Age Distribution by Subscription Status",
	"insights.chart.age.axis":  "Number of Customers",
	"insights.chart.age.group": "Age Group",
	"insights.chart.scatter":   "💰 Account Balance vs. Call Duration",
	"insights.chart.scatter.x": "Account Balance (€)",
	"insights.chart.scatter.y": "Call Duration (seconds)",
	"insights.series.yes":      "Subscribed",
	"insights.series.no":       "Not Subscribed",
	"insights.overview.title":  "📊 Dataset Overview",
	"insights.overview.1":      "📈 Total Records: 45,211 customers",
	"insights.overview.2":      "🎯 Features: 16 inputs + 1 target",
	"insights.overview.3":      "✅ Data Quality: No missing values",
	"insights.overview.4":      "⚖️ Class Split: 88.3% No, 11.7% Yes",
	"insights.business.title":  "🎯 Key Business Insights",
	"insights.business.1":      "⏱️ Call Duration: Strongest predictor",
	"insights.business.2":      "📱 Contact Method: Cellular > Telephone",
	"insights.business.3":      "🏆 Previous Success: Raises the probability",
	"insights.business.4":      "👥 Age Group: 30-60 is the optimal range",

	"modelinfo.loading":          "Loading model information...",
	"modelinfo.best.title":       "🤖 Model Performance",
	"modelinfo.best.name":        "Best Model",
	"modelinfo.best.type":        "Model Type",
	"modelinfo.metric.accuracy":  "Test Accuracy",
	"modelinfo.metric.precision": "Precision",
	"modelinfo.metric.recall":    "Recall",
	"modelinfo.metric.f1":        "F1-Score",
	"modelinfo.metric.auc":       "AUC-ROC",
	"modelinfo.metric.cvfolds":   "Cross-validation Folds",
	"modelinfo.metric.cvscore":   "Cross-validation Score",
	"modelinfo.stack.title":      "🛠️ Technical Stack",
	"modelinfo.stack.algorithm":  "Model Algorithm:",
	"modelinfo.stack.1":          "Gradient Boosting Classifier",
	"modelinfo.stack.2":          "100 estimators",
	"modelinfo.stack.3":          "Random state: 42",
	"modelinfo.stack.prep":       "Data Preprocessing:",
	"modelinfo.stack.4":          "Standard Scaling (numeric)",
	"modelinfo.stack.5":          "One-Hot Encoding (categorical)",
	"modelinfo.stack.6":          "SMOTE (class balancing)",
	"modelinfo.stack.7":          "Feature Engineering (age groups, categories)",
	"modelinfo.impact.title":     "💼 Business Impact Analysis",
	"modelinfo.impact.perf":      "📈 Performance Interpretation:",
	"modelinfo.impact.precision": "Precision ~50.1%: Of the customers predicted to subscribe, about 50.1% actually will. This keeps false positives and wasted marketing spend down.",
	"modelinfo.impact.recall":    "Recall ~71.6%: Of the customers who actually subscribe, about 71.6% are identified by the model, so few business opportunities are missed.",
	"modelinfo.impact.roi":       "💰 ROI Projection:",
	"modelinfo.impact.roi.1":     "Cost Reduction: ~70% (from $500K to $150K)",
	"modelinfo.impact.roi.2":     "Conversion Uplift: +67% (target 20%+)",
	"modelinfo.impact.roi.3":     "Efficiency Gain: 3x targeting accuracy",
	"modelinfo.impact.roi.4":     "Potential Annual Savings: > $350,000",
	"modelinfo.method.title":     "📋 CRISP-DM Methodology",
	"modelinfo.method.1":         "1. Business Understanding: Needs and goals analysis.",
	"modelinfo.method.2":         "2. Data Understanding: EDA over 45,211 records.",
	"modelinfo.method.3":         "3. Data Preparation: Feature engineering and preprocessing.",
	"modelinfo.method.4":         "4. Modelling: Training and evaluating several algorithms.",
	"modelinfo.method.5":         "5. Evaluation: Performance assessment and validation.",
	"modelinfo.method.6":         "6. Deployment: Web application and prediction API.",
	"modelinfo.method.done":      "✅ Done",
	"modelinfo.method.ongoing":   "✅ In Progress",
}
