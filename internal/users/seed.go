package users

import (
	"context"

	"github.com/dmitrijs2005/alumnihub/internal/common"
	"github.com/dmitrijs2005/alumnihub/internal/hashx"
)

// demoAlumni covers every department so the analytics views have data on a
// fresh install. Passwords are assigned at seed time.
var demoAlumni = []User{
	{ID: 2, Name: "John Smith", Email: "john.smith@alumni.edu", Role: RoleAlumni, Department: "CSE", GraduationYear: 2020, Company: "TechWorks", Position: "Software Engineer", Skills: "JavaScript, React, Node.js", LinkedIn: "https://linkedin.com/in/johnsmith", Mentorship: true},
	{ID: 3, Name: "Alice Brown", Email: "alice.brown@alumni.edu", Role: RoleAlumni, Department: "CSE", GraduationYear: 2019, Company: "DataSys", Position: "Data Scientist", Skills: "Python, ML, SQL", LinkedIn: "https://linkedin.com/in/alicebrown"},
	{ID: 4, Name: "Priya Kumar", Email: "priya.kumar@alumni.edu", Role: RoleAlumni, Department: "ECE", GraduationYear: 2019, Company: "Circuits Ltd", Position: "Embedded Engineer", Skills: "C, Embedded Systems, FPGA", LinkedIn: "https://linkedin.com/in/priyak"},
	{ID: 5, Name: "Eve Garcia", Email: "eve.garcia@alumni.edu", Role: RoleAlumni, Department: "ECE", GraduationYear: 2017, Company: "SignalTech", Position: "Signal Processing Engineer", Skills: "MATLAB, DSP", LinkedIn: "https://linkedin.com/in/evegarcia", Mentorship: true},
	{ID: 6, Name: "Rahul Verma", Email: "rahul.verma@alumni.edu", Role: RoleAlumni, Department: "EEE", GraduationYear: 2018, Company: "PowerGrid", Position: "Electrical Engineer", Skills: "Power Systems, MATLAB", LinkedIn: "https://linkedin.com/in/rahulv", Mentorship: true},
	{ID: 7, Name: "Jack Lee", Email: "jack.lee@alumni.edu", Role: RoleAlumni, Department: "EEE", GraduationYear: 2019, Company: "Renewable Energy", Position: "Solar Engineer", Skills: "Solar PV, Inverters", LinkedIn: "https://linkedin.com/in/jacklee", Mentorship: true},
	{ID: 8, Name: "Asha Patel", Email: "asha.patel@alumni.edu", Role: RoleAlumni, Department: "Mechanical", GraduationYear: 2017, Company: "MechWorks", Position: "Design Engineer", Skills: "AutoCAD, SolidWorks, Manufacturing", LinkedIn: "https://linkedin.com/in/ashap"},
	{ID: 9, Name: "Paula Quinn", Email: "paula.quinn@alumni.edu", Role: RoleAlumni, Department: "Mechanical", GraduationYear: 2020, Company: "Robotics Inc", Position: "Robotics Engineer", Skills: "Robotics, Mechatronics", LinkedIn: "https://linkedin.com/in/paulaquinn", Mentorship: true},
	{ID: 10, Name: "Vikram Singh", Email: "vikram.singh@alumni.edu", Role: RoleAlumni, Department: "Civil", GraduationYear: 2016, Company: "InfraBuild", Position: "Site Engineer", Skills: "Structural Design, AutoCAD", LinkedIn: "https://linkedin.com/in/vikrams", Mentorship: true},
	{ID: 11, Name: "Uma Wilson", Email: "uma.wilson@alumni.edu", Role: RoleAlumni, Department: "Civil", GraduationYear: 2020, Company: "StructEng", Position: "Structural Engineer", Skills: "Structural Analysis, STAAD", LinkedIn: "https://linkedin.com/in/umawilson", Mentorship: true},
	{ID: 12, Name: "Neha Gupta", Email: "neha.gupta@alumni.edu", Role: RoleAlumni, Department: "MBA", GraduationYear: 2018, Company: "MarketWise", Position: "Strategy Analyst", Skills: "Strategy, Excel, SQL", LinkedIn: "https://linkedin.com/in/nehag"},
	{ID: 13, Name: "Victor Xu", Email: "victor.xu@alumni.edu", Role: RoleAlumni, Department: "MBA", GraduationYear: 2019, Company: "FinanceCorp", Position: "Financial Analyst", Skills: "Finance, Modeling, Valuation", LinkedIn: "https://linkedin.com/in/victorxu", Mentorship: true},
	{ID: 14, Name: "Arjun Rao", Email: "arjun.rao@alumni.edu", Role: RoleAlumni, Department: "Diploma", GraduationYear: 2015, Company: "FactoryLine", Position: "Maintenance Supervisor", Skills: "PLC, Maintenance", LinkedIn: "https://linkedin.com/in/arjunr"},
	{ID: 15, Name: "Zoe Adams", Email: "zoe.adams@alumni.edu", Role: RoleAlumni, Department: "Diploma", GraduationYear: 2016, Company: "TechSupport", Position: "Technical Support", Skills: "Troubleshooting, Hardware", LinkedIn: "https://linkedin.com/in/zoeadams", Mentorship: true},
}

// SeedDemo populates the demo data set when the collection is empty. The
// repair pass runs first so an imported collection with duplicate admins is
// normalized even when seeding is skipped.
func (s *Service) SeedDemo(ctx context.Context) error {
	if err := s.RepairAdminInvariant(ctx); err != nil {
		return err
	}

	us, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	if len(us) > 0 {
		return nil
	}

	admin := User{
		ID:             1,
		Name:           common.DefaultAdminName,
		Email:          common.DefaultAdminEmail,
		PasswordHash:   hashx.Hash(common.DefaultAdminPassword),
		Role:           RoleAdmin,
		Department:     "Computer Science",
		GraduationYear: 2015,
		Company:        "University Admin",
		Position:       "System Administrator",
		Skills:         "Management, Analytics, Administration",
		LinkedIn:       "https://linkedin.com/in/admin",
		Mentorship:     true,
	}

	us = append(us, admin)
	digest := hashx.Hash(common.DemoAlumniPassword)
	for _, a := range demoAlumni {
		a.PasswordHash = digest
		us = append(us, a)
	}

	return s.repo.Replace(ctx, us)
}
