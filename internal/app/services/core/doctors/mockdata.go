package doctors

import "medifind-service/internal/app/models"

const stockDoctorImage = "https://www.practostatic.com/consumer-home/desktop/images/1597423628/dweb_find_doctors.png"

// EmbeddedDoctors is the built-in provider dataset. It is the terminal
// fallback when both the upstream directory and Mongo are empty or down, and
// the payload cmd/seed loads into Mongo.
var EmbeddedDoctors = []models.Doctor{
	{
		ID:           "1",
		Name:         "Dr. Anjali Desai",
		Specialty:    "Dentist",
		Experience:   "12 years experience",
		Location:     "Jubilee Hills, Hyderabad",
		Clinic:       "Apollo Dental, Road No 92",
		Fee:          "₹500",
		Availability: "Available Today",
		Image:        stockDoctorImage,
		Latitude:     17.4325,
		Longitude:    78.4071,
		Slots: []models.DaySchedule{
			{Date: "Today", Times: []string{"10:00 AM", "11:30 AM", "2:00 PM", "4:30 PM"}},
			{Date: "Tomorrow", Times: []string{"09:00 AM", "11:00 AM", "3:00 PM"}},
		},
	},
	{
		ID:           "2",
		Name:         "Dr. Rajesh Kumar",
		Specialty:    "General Physician",
		Experience:   "15 years experience",
		Location:     "Kondapur, Hyderabad",
		Clinic:       "Kims Hospital, Kondapur Main Road",
		Fee:          "₹600",
		Availability: "Available Today",
		Image:        stockDoctorImage,
		Latitude:     17.4622,
		Longitude:    78.3568,
		Slots: []models.DaySchedule{
			{Date: "Today", Times: []string{"05:00 PM", "06:30 PM", "08:00 PM"}},
			{Date: "Tomorrow", Times: []string{"10:30 AM", "12:30 PM", "05:30 PM"}},
		},
	},
	{
		ID:           "3",
		Name:         "Dr. Priya Sharma",
		Specialty:    "Gynecologist/Obstetrician",
		Experience:   "9 years experience",
		Location:     "Banjara Hills, Hyderabad",
		Clinic:       "Rainbow Children's Hospital, Road No 2",
		Fee:          "₹700",
		Availability: "Available Tomorrow",
		Image:        stockDoctorImage,
		Latitude:     17.4108,
		Longitude:    78.4294,
		Slots: []models.DaySchedule{
			{Date: "Tomorrow", Times: []string{"11:00 AM", "01:00 PM", "04:00 PM"}},
		},
	},
	{
		ID:           "4",
		Name:         "Dr. Vikram Singh",
		Specialty:    "Dermatologist",
		Experience:   "8 years experience",
		Location:     "Madhapur, Hyderabad",
		Clinic:       "Skin & Hair Clinic, Hitech City Rd",
		Fee:          "₹800",
		Availability: "Available Today",
		Image:        stockDoctorImage,
		Latitude:     17.4483,
		Longitude:    78.3915,
		Slots: []models.DaySchedule{
			{Date: "Today", Times: []string{"02:00 PM", "03:30 PM"}},
			{Date: "Tomorrow", Times: []string{"10:00 AM", "04:30 PM"}},
		},
	},
	{
		ID:           "5",
		Name:         "Dr. Siddalinga Swamy",
		Specialty:    "Urologist",
		Experience:   "10 years experience",
		Location:     "Ramachandrapuram, Hyderabad",
		Clinic:       "Shree Veda Multispeciality Hospital, NH 65, Ashok Nagar",
		Fee:          "₹800",
		Availability: "Available Today",
		Image:        "/images/dr_siddalinga_swamy.png",
		Latitude:     17.4897,
		Longitude:    78.2823,
		Slots: []models.DaySchedule{
			{Date: "Today", Times: []string{"10:00 AM", "01:00 PM", "06:00 PM"}},
			{Date: "Tomorrow", Times: []string{"10:00 AM", "02:00 PM", "05:00 PM"}},
		},
	},
	{
		ID:           "6",
		Name:         "Dr. Rajesh Kumar",
		Specialty:    "Dentist",
		Experience:   "8 years experience",
		Location:     "Indiranagar, Bangalore",
		Clinic:       "Apollo Dental, 100 Feet Road",
		Fee:          "₹600",
		Availability: "Available Tomorrow",
		Image:        stockDoctorImage,
		Latitude:     12.9719,
		Longitude:    77.6412,
		Slots: []models.DaySchedule{
			{Date: "Tomorrow", Times: []string{"10:00 AM", "05:00 PM"}},
		},
	},
	{
		ID:           "7",
		Name:         "Dr. Priya Sharma",
		Specialty:    "Dermatologist",
		Experience:   "12 years experience",
		Location:     "Koramangala, Bangalore",
		Clinic:       "Skin Care Clinic, 80 Feet Road",
		Fee:          "₹900",
		Availability: "Available Today",
		Image:        stockDoctorImage,
		Latitude:     12.9352,
		Longitude:    77.6245,
		Slots: []models.DaySchedule{
			{Date: "Today", Times: []string{"11:00 AM", "03:00 PM"}},
		},
	},
	{
		ID:           "8",
		Name:         "Dr. Suresh Reddy",
		Specialty:    "General Physician",
		Experience:   "15 years experience",
		Location:     "Adyar, Chennai",
		Clinic:       "Apollo Hospital, Greams Road",
		Fee:          "₹700",
		Availability: "Available Today",
		Image:        stockDoctorImage,
		Latitude:     13.0067,
		Longitude:    80.2572,
		Slots: []models.DaySchedule{
			{Date: "Today", Times: []string{"09:00 AM", "01:00 PM"}},
		},
	},
	{
		ID:           "9",
		Name:         "Dr. Anita Desai",
		Specialty:    "Gynecologist/Obstetrician",
		Experience:   "9 years experience",
		Location:     "Bandra West, Mumbai",
		Clinic:       "Lilavati Hospital, Bandra Reclamation",
		Fee:          "₹1200",
		Availability: "Available Tomorrow",
		Image:        stockDoctorImage,
		Latitude:     19.0596,
		Longitude:    72.8295,
		Slots: []models.DaySchedule{
			{Date: "Tomorrow", Times: []string{"10:00 AM", "02:00 PM"}},
		},
	},
	{
		ID:           "10",
		Name:         "Dr. Suresh Gupta",
		Specialty:    "Cardiologist",
		Experience:   "18 years experience",
		Location:     "Whitefield, Bangalore",
		Clinic:       "Manipal Hospital, Whitefield Main Rd",
		Fee:          "₹900",
		Availability: "Available Today",
		Image:        stockDoctorImage,
		Latitude:     12.9698,
		Longitude:    77.7500,
		Slots: []models.DaySchedule{
			{Date: "Today", Times: []string{"09:00 AM", "11:00 AM"}},
			{Date: "Tomorrow", Times: []string{"10:00 AM", "01:00 PM"}},
		},
	},
	{
		ID:           "11",
		Name:         "Dr. Meena Iyer",
		Specialty:    "Gynecologist/Obstetrician",
		Experience:   "14 years experience",
		Location:     "Jayanagar, Bangalore",
		Clinic:       "Cloudnine Hospital, 3rd Block",
		Fee:          "₹750",
		Availability: "Available Tomorrow",
		Image:        stockDoctorImage,
		Latitude:     12.9308,
		Longitude:    77.5838,
		Slots: []models.DaySchedule{
			{Date: "Tomorrow", Times: []string{"02:00 PM", "04:30 PM", "06:00 PM"}},
		},
	},
	{
		ID:           "12",
		Name:         "Dr. Amit Patil",
		Specialty:    "Orthopedic",
		Experience:   "10 years experience",
		Location:     "HSR Layout, Bangalore",
		Clinic:       "Narayana Hrudayalaya Clinic, Sector 2",
		Fee:          "₹650",
		Availability: "Available Today",
		Image:        stockDoctorImage,
		Latitude:     12.9116,
		Longitude:    77.6389,
		Slots: []models.DaySchedule{
			{Date: "Today", Times: []string{"05:00 PM", "07:30 PM"}},
		},
	},
	{
		ID:           "13",
		Name:         "Dr. Sneha Reddy",
		Specialty:    "Pediatrician",
		Experience:   "7 years experience",
		Location:     "Malleshwaram, Bangalore",
		Clinic:       "Columbia Asia Referral Hospital, Gateway",
		Fee:          "₹600",
		Availability: "Available Today",
		Image:        stockDoctorImage,
		Latitude:     13.0033,
		Longitude:    77.5703,
		Slots: []models.DaySchedule{
			{Date: "Today", Times: []string{"10:00 AM", "01:00 PM"}},
			{Date: "Tomorrow", Times: []string{"09:30 AM", "12:00 PM"}},
		},
	},
	{
		ID:           "14",
		Name:         "Dr. Ravi Varma",
		Specialty:    "Cardiologist",
		Experience:   "20 years experience",
		Location:     "Gachibowli, Hyderabad",
		Clinic:       "Continental Hospitals, Financial District",
		Fee:          "₹1000",
		Availability: "Available Today",
		Image:        stockDoctorImage,
		Latitude:     17.4401,
		Longitude:    78.3489,
		Slots: []models.DaySchedule{
			{Date: "Today", Times: []string{"11:00 AM", "02:00 PM"}},
		},
	},
	{
		ID:           "15",
		Name:         "Dr. Latika Rao",
		Specialty:    "Dermatologist",
		Experience:   "6 years experience",
		Location:     "Kukatpally, Hyderabad",
		Clinic:       "Oliva Skin & Hair Clinic, KPHB Colony",
		Fee:          "₹550",
		Availability: "Available Tomorrow",
		Image:        stockDoctorImage,
		Latitude:     17.4849,
		Longitude:    78.4138,
		Slots: []models.DaySchedule{
			{Date: "Tomorrow", Times: []string{"03:00 PM", "05:00 PM", "07:00 PM"}},
		},
	},
}
