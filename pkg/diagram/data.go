package diagram

// The rollout workflow, as agreed with the clinic operations team.
// Hand-authored: edit positions here, never compute them.

// ---------------------------------------------------------------------------
// main - Clinic App Build & Rollout
// ---------------------------------------------------------------------------

var mainDiagram = Diagram{
	ID:    "main",
	Title: "Clinic App Build & Rollout",
	Nodes: []Node{
		{ID: "start", Label: "Start", Shape: ShapeTerminator, Pos: Point{X: 300, Y: 40}, Size: Size{W: 120, H: 50}},
		{ID: "requirements", Label: "Gather Clinic Requirements", Shape: ShapeProcess, Pos: Point{X: 260, Y: 130}, Size: Size{W: 200, H: 60}},
		{ID: "flutter-screens", Label: "Build Flutter Screens", Shape: ShapeProcess, Pos: Point{X: 260, Y: 230}, Size: Size{W: 200, H: 60}, AllowSubNodes: true},
		{ID: "backend-api", Label: "Implement Backend API", Shape: ShapeProcess, Pos: Point{X: 260, Y: 330}, Size: Size{W: 200, H: 60}, AllowSubNodes: true},
		{ID: "integration", Label: "Integrate & Test", Shape: ShapeProcess, Pos: Point{X: 260, Y: 430}, Size: Size{W: 200, H: 60}},
		{ID: "pilot-ready", Label: "Pilot Ready?", Shape: ShapeDecision, Pos: Point{X: 280, Y: 530}, Size: Size{W: 160, H: 80}},
		{ID: "pilot", Label: "Pilot at First Clinic", Shape: ShapeSubprocess, Pos: Point{X: 260, Y: 660}, Size: Size{W: 200, H: 60}, AllowSubNodes: true},
		{ID: "rollout", Label: "Roll Out to All Clinics", Shape: ShapeProcess, Pos: Point{X: 260, Y: 760}, Size: Size{W: 200, H: 60}},
		{ID: "end", Label: "Done", Shape: ShapeTerminator, Pos: Point{X: 300, Y: 860}, Size: Size{W: 120, H: 50}},
	},
	Arrows: []Arrow{
		{From: "start", To: "requirements"},
		{From: "requirements", To: "flutter-screens"},
		{From: "flutter-screens", To: "backend-api"},
		{From: "backend-api", To: "integration"},
		{From: "integration", To: "pilot-ready"},
		{From: "pilot-ready", To: "pilot", Label: "yes"},
		{From: "pilot-ready", To: "integration", Label: "no", Waypoints: []Point{{X: 560, Y: 570}, {X: 560, Y: 460}}},
		{From: "pilot", To: "rollout"},
		{From: "rollout", To: "end"},
	},
}

// ---------------------------------------------------------------------------
// intake - Patient Intake Workflow
// ---------------------------------------------------------------------------

var intakeDiagram = Diagram{
	ID:    "intake",
	Title: "Patient Intake Workflow",
	Nodes: []Node{
		{ID: "arrive", Label: "Patient Arrives", Shape: ShapeTerminator, Pos: Point{X: 300, Y: 40}, Size: Size{W: 140, H: 50}},
		{ID: "checkin", Label: "Front Desk Check-In", Shape: ShapeProcess, Pos: Point{X: 260, Y: 130}, Size: Size{W: 200, H: 60}, AllowSubNodes: true},
		{ID: "verify", Label: "Verify Insurance", Shape: ShapeProcess, Pos: Point{X: 260, Y: 230}, Size: Size{W: 200, H: 60}},
		{ID: "known", Label: "Existing Patient?", Shape: ShapeDecision, Pos: Point{X: 280, Y: 330}, Size: Size{W: 160, H: 80}},
		{ID: "register", Label: "Register Patient Record", Shape: ShapeProcess, Pos: Point{X: 540, Y: 340}, Size: Size{W: 200, H: 60}, AllowSubNodes: true},
		{ID: "triage", Label: "Nurse Triage", Shape: ShapeProcess, Pos: Point{X: 260, Y: 470}, Size: Size{W: 200, H: 60}},
		{ID: "consult", Label: "Doctor Consultation", Shape: ShapeSubprocess, Pos: Point{X: 260, Y: 570}, Size: Size{W: 200, H: 60}},
		{ID: "done", Label: "Visit Complete", Shape: ShapeTerminator, Pos: Point{X: 300, Y: 670}, Size: Size{W: 140, H: 50}},
	},
	Arrows: []Arrow{
		{From: "arrive", To: "checkin"},
		{From: "checkin", To: "verify"},
		{From: "verify", To: "known"},
		{From: "known", To: "triage", Label: "yes"},
		{From: "known", To: "register", Label: "no"},
		{From: "register", To: "triage", Waypoints: []Point{{X: 640, Y: 500}}},
		{From: "triage", To: "consult"},
		{From: "consult", To: "done"},
	},
}

// ---------------------------------------------------------------------------
// training - Staff Onboarding & Training
// ---------------------------------------------------------------------------

var trainingDiagram = Diagram{
	ID:    "training",
	Title: "Staff Onboarding & Training",
	Nodes: []Node{
		{ID: "kickoff", Label: "Training Kickoff", Shape: ShapeTerminator, Pos: Point{X: 300, Y: 40}, Size: Size{W: 140, H: 50}},
		{ID: "schedule", Label: "Schedule Training Sessions", Shape: ShapeProcess, Pos: Point{X: 260, Y: 130}, Size: Size{W: 200, H: 60}, AllowSubNodes: true},
		{ID: "frontdesk", Label: "Front Desk Module Training", Shape: ShapeProcess, Pos: Point{X: 260, Y: 230}, Size: Size{W: 200, H: 60}},
		{ID: "clinical", Label: "Clinical Module Training", Shape: ShapeProcess, Pos: Point{X: 260, Y: 330}, Size: Size{W: 200, H: 60}},
		{ID: "assess", Label: "Competency Check Passed?", Shape: ShapeDecision, Pos: Point{X: 280, Y: 430}, Size: Size{W: 160, H: 80}},
		{ID: "refresher", Label: "Refresher Session", Shape: ShapeProcess, Pos: Point{X: 540, Y: 440}, Size: Size{W: 180, H: 60}},
		{ID: "signoff", Label: "Staff Signed Off", Shape: ShapeTerminator, Pos: Point{X: 300, Y: 570}, Size: Size{W: 140, H: 50}},
	},
	Arrows: []Arrow{
		{From: "kickoff", To: "schedule"},
		{From: "schedule", To: "frontdesk"},
		{From: "frontdesk", To: "clinical"},
		{From: "clinical", To: "assess"},
		{From: "assess", To: "signoff", Label: "yes"},
		{From: "assess", To: "refresher", Label: "no"},
		{From: "refresher", To: "assess", Waypoints: []Point{{X: 630, Y: 400}, {X: 440, Y: 400}}},
	},
}

// ---------------------------------------------------------------------------
// golive - Go-Live & Support
// ---------------------------------------------------------------------------

var goliveDiagram = Diagram{
	ID:    "golive",
	Title: "Go-Live & Support",
	Nodes: []Node{
		{ID: "freeze", Label: "Data Freeze", Shape: ShapeTerminator, Pos: Point{X: 300, Y: 40}, Size: Size{W: 140, H: 50}},
		{ID: "migrate", Label: "Migrate Patient Records", Shape: ShapeProcess, Pos: Point{X: 260, Y: 130}, Size: Size{W: 200, H: 60}, AllowSubNodes: true},
		{ID: "dryrun", Label: "Dry-Run Day", Shape: ShapeSubprocess, Pos: Point{X: 260, Y: 230}, Size: Size{W: 200, H: 60}},
		{ID: "issues", Label: "Blocking Issues?", Shape: ShapeDecision, Pos: Point{X: 280, Y: 330}, Size: Size{W: 160, H: 80}},
		{ID: "fix", Label: "Fix & Re-Verify", Shape: ShapeProcess, Pos: Point{X: 540, Y: 340}, Size: Size{W: 180, H: 60}},
		{ID: "liveday", Label: "Go Live", Shape: ShapeProcess, Pos: Point{X: 260, Y: 470}, Size: Size{W: 200, H: 60}},
		{ID: "hypercare", Label: "Hypercare Support", Shape: ShapeSubprocess, Pos: Point{X: 260, Y: 570}, Size: Size{W: 200, H: 60}, AllowSubNodes: true},
		{ID: "close", Label: "Project Close", Shape: ShapeTerminator, Pos: Point{X: 300, Y: 670}, Size: Size{W: 140, H: 50}},
	},
	Arrows: []Arrow{
		{From: "freeze", To: "migrate"},
		{From: "migrate", To: "dryrun"},
		{From: "dryrun", To: "issues"},
		{From: "issues", To: "liveday", Label: "no"},
		{From: "issues", To: "fix", Label: "yes"},
		{From: "fix", To: "dryrun", Waypoints: []Point{{X: 630, Y: 260}}},
		{From: "liveday", To: "hypercare"},
		{From: "hypercare", To: "close"},
	},
}
